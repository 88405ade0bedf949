package ui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyform/internal/airports"
	"skyform/internal/config"
	"skyform/internal/domain"
	"skyform/internal/eventbus"
	inputtypes "skyform/internal/ui/input/types"
	"skyform/internal/ui/logic"
)

// recordingBus keeps published events in memory
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestModel(t *testing.T) (*Model, *recordingBus) {
	t.Helper()
	bus := &recordingBus{}
	m := NewModel(bus, config.DefaultConfig(), airports.NewStatic())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, bus
}

func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, last = m.Update(msg)
	}
	return last
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// collectMsgs runs cmd and flattens batches
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewModelUsesDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	s := m.Form()

	assert.Equal(t, domain.OneWay, s.TripType)
	assert.Equal(t, "Dhaka", s.Origin.City)
	assert.Equal(t, "Chittagong", s.Destination.City)
	assert.Equal(t, domain.PassengerCounts{Adults: 1}, s.Passengers)
	assert.Equal(t, domain.Economy, s.FareClass)
	assert.Equal(t, domain.Expanded, s.View)
	assert.False(t, s.DepartureDate.IsSet())
}

func TestInitialFormStateFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultOrigin = "CXB"
	cfg.DefaultDestination = "nope"
	cfg.DefaultFareClass = "Business"

	s := InitialFormState(cfg, airports.NewStatic())
	assert.Equal(t, "Cox's Bazar", s.Origin.City)
	assert.Equal(t, "Chittagong", s.Destination.City, "unknown codes keep the default")
	assert.Equal(t, domain.Business, s.FareClass)
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := NewModel(nil, nil, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestSwapKey(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "x")

	s := m.Form()
	assert.Equal(t, "Chittagong", s.Origin.City)
	assert.Equal(t, "Dhaka", s.Destination.City)
}

func TestSearchCollapsesAndPublishes(t *testing.T) {
	m, bus := newTestModel(t)
	press(m, "2")
	press(m, "S")

	s := m.Form()
	assert.Equal(t, domain.Collapsed, s.View)

	events := bus.ofType(eventbus.EventSearchRequested)
	require.Len(t, events, 1)
	req := events[0].(eventbus.SearchRequestedEvent).Request
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, req.ID, m.state.LastSearchID)
	assert.Equal(t, domain.RoundTrip, req.TripType)
	assert.Equal(t, "Dhaka", req.Origin.City)
	assert.False(t, req.RequestedAt.IsZero())

	assert.Contains(t, m.state.StatusMessage, "Searching Dhaka → Chittagong")
	assert.Contains(t, m.View(), "Modify")
}

func TestModifyReopensForm(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "S")
	require.Equal(t, domain.Collapsed, m.Form().View)

	// swap is not available on the summary
	press(m, "x")
	assert.Equal(t, "Dhaka", m.Form().Origin.City)

	press(m, "m")
	assert.Equal(t, domain.Expanded, m.Form().View)
}

func TestCycleTripTypeMovesFocusOffReturn(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "right")
	assert.Equal(t, domain.RoundTrip, m.Form().TripType)

	// trip type, origin, destination, departure, return
	press(m, "tab", "tab", "tab", "tab")
	require.Equal(t, logic.FieldReturn, m.state.Focus)

	press(m, "1")
	assert.Equal(t, domain.OneWay, m.Form().TripType)
	assert.Equal(t, logic.FieldDeparture, m.state.Focus)
}

func TestFocusSkipsReturnForOneWay(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "tab", "tab", "tab", "tab")
	assert.Equal(t, logic.FieldTravelers, m.state.Focus)
}

func TestPickOriginAirport(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "tab", "enter")
	require.Equal(t, inputtypes.ModeLocation, m.inputHandler.CurrentMode())
	assert.Len(t, m.state.Suggestions, 3)

	typeText(m, "cox")
	require.Len(t, m.state.Suggestions, 1)
	assert.Equal(t, "cox", m.state.TextValue)

	press(m, "enter")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, "Cox's Bazar", m.Form().Origin.City)
	assert.Empty(t, m.state.Suggestions)
}

func TestEnterDepartureDate(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "tab", "tab", "tab", "enter")
	require.Equal(t, inputtypes.ModeDate, m.inputHandler.CurrentMode())

	typeText(m, "3/15/2025")
	press(m, "enter")

	d := m.Form().DepartureDate
	require.True(t, d.IsSet())
	assert.Equal(t, "3/15/2025", d.Format("1/2/2006"))
}

func TestTravelersEditorThroughHook(t *testing.T) {
	m, bus := newTestModel(t)
	press(m, "tab", "tab", "tab", "tab", "enter")

	require.Equal(t, inputtypes.ModePassengers, m.inputHandler.CurrentMode())
	require.Len(t, bus.ofType(eventbus.EventPassengerEditorRequested), 1)
	assert.Equal(t, domain.PassengerCounts{Adults: 1}, m.state.PassengerDraft)

	press(m, "right", "tab", "right", "enter")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, domain.PassengerCounts{Adults: 2, Children: 1}, m.Form().Passengers)
	assert.Contains(t, m.View(), "3 Travelers")
}

func TestHelpPopup(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "?")
	assert.True(t, m.state.ShowHelp)
	assert.Equal(t, inputtypes.ModeHelp, m.inputHandler.CurrentMode())

	// keys do not leak to the form while help is open
	press(m, "x")
	assert.Equal(t, "Dhaka", m.Form().Origin.City)

	press(m, "esc")
	assert.False(t, m.state.ShowHelp)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestHelpPagerWithoutProgram(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "H")
	assert.Equal(t, "Help pager is not available", m.state.StatusMessage)
}

func TestStatusClearsOnlyLatest(t *testing.T) {
	m, _ := newTestModel(t)
	m.setStatus("first")
	stale := m.statusID
	m.setStatus("second")

	m.Update(clearStatusMsg{id: stale})
	assert.Equal(t, "second", m.state.StatusMessage)

	m.Update(clearStatusMsg{id: m.statusID})
	assert.Empty(t, m.state.StatusMessage)
}

func TestErrorEventShowsStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "boom"}})
	assert.Equal(t, "boom", m.state.StatusMessage)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")

	found := false
	for _, msg := range collectMsgs(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			found = true
		}
	}
	assert.True(t, found)
}

func TestViewShowsForm(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"One Way", "Dhaka", "Chittagong", "1 Traveler", "Economy"} {
		assert.True(t, strings.Contains(out, want), "missing %q", want)
	}
}
