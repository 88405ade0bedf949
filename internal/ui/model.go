package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"skyform/internal/airports"
	"skyform/internal/config"
	"skyform/internal/domain"
	"skyform/internal/eventbus"
	"skyform/internal/searchform"
	"skyform/internal/ui/input"
	inputtypes "skyform/internal/ui/input/types"
	"skyform/internal/ui/logic"
	"skyform/internal/ui/state"
	"skyform/internal/ui/viewmodels"
	"skyform/internal/ui/views"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 4 * time.Second

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState // everything that is not a form field
	form     *searchform.Form
	airports airports.Provider

	width  int
	height int

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpOps      *HelpOps

	statusID int
	pending  []tea.Cmd // commands queued by form hooks

	// Program reference for terminal management
	program *tea.Program
}

// InitialFormState builds the starting form from the configured defaults.
// Unknown airport codes fall back to the built-in defaults.
func InitialFormState(cfg *config.Config, provider airports.Provider) searchform.State {
	s := searchform.DefaultState()
	if provider != nil {
		if a, ok := provider.ByCode(cfg.DefaultOrigin); ok {
			s.Origin = a.Location()
		}
		if a, ok := provider.ByCode(cfg.DefaultDestination); ok {
			s.Destination = a.Location()
		}
	}
	s.FareClass = cfg.FareClass()
	return s
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, provider airports.Provider) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if provider == nil {
		provider = airports.NewStatic()
	}

	appState := state.NewAppState()
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		airports:     provider,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, cfg),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}

	m.form = searchform.New(InitialFormState(cfg, provider), searchform.Hooks{
		OnSearchRequested:          m.onSearchRequested,
		OnPassengerEditorRequested: m.onPassengerEditorRequested,
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.helpOps != nil {
		m.helpOps.SetProgram(p)
	}
}

// Form returns the current form values
func (m *Model) Form() searchform.State {
	return m.form.Snapshot()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		cmds = append(cmds, m.drainPending()...)

		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Error showing help pager: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open help: %v", msg.err))
		}

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.state.StatusMessage = ""
		}

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus(e.Message)
		}

	default:
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetTextInput(ti.View())
	} else {
		m.viewModel.SetTextInput("")
	}

	return m.renderer.Render(m.viewModel.BuildViewState(m.form.Snapshot()))
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:    m.form.Snapshot(),
		Focus:    m.state.Focus,
		Layout:   m.config.DateFormat,
		Airports: m.airports,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.FocusAction:
		m.state.MoveFocus(a.Delta, m.form.Snapshot())

	case inputtypes.CycleAction:
		current := m.form.Snapshot()
		switch m.state.Focus {
		case logic.FieldTripType:
			m.form.SetTripType(logic.Cycle(domain.TripTypes, current.TripType, a.Delta))
			m.state.EnsureFocusable(m.form.Snapshot())
		case logic.FieldFareClass:
			m.form.SetFareClass(logic.Cycle(domain.FareClasses, current.FareClass, a.Delta))
		}

	case inputtypes.SetTripTypeAction:
		m.form.SetTripType(a.TripType)
		m.state.EnsureFocusable(m.form.Snapshot())

	case inputtypes.SetLocationAction:
		switch a.Field {
		case logic.FieldOrigin:
			m.form.SetOrigin(a.Airport.Location())
		case logic.FieldDestination:
			m.form.SetDestination(a.Airport.Location())
		}
		m.state.ClearPicker()

	case inputtypes.SetDateAction:
		switch a.Field {
		case logic.FieldDeparture:
			m.form.SetDepartureDate(a.Date)
		case logic.FieldReturn:
			m.form.SetReturnDate(a.Date)
		}

	case inputtypes.SetPassengersAction:
		m.form.SetPassengers(a.Counts)

	case inputtypes.SwapAction:
		m.form.Swap()

	case inputtypes.SearchAction:
		m.form.Search()

	case inputtypes.ToggleViewAction:
		m.form.ToggleView()

	case inputtypes.RequestPassengersAction:
		m.form.RequestPassengerEditor()

	case inputtypes.UpdateTextAction:
		m.state.TextValue = a.Text

	case inputtypes.CancelTextAction:
		m.state.ClearPicker()

	case inputtypes.UpdateSuggestionsAction:
		m.state.Suggestions = a.Suggestions
		m.state.SuggestionIndex = a.Index

	case inputtypes.UpdatePassengerDraftAction:
		m.state.PassengerDraft = a.Counts
		m.state.PassengerBand = a.Band

	case inputtypes.StatusAction:
		return m.setStatus(a.Message)

	case inputtypes.ShowHelpAction:
		m.state.ShowHelp = a.Show
		m.state.HelpScrollOffset = 0

	case inputtypes.ScrollHelpAction:
		m.state.ScrollHelp(a.Delta, m.maxHelpScroll())

	case inputtypes.OpenHelpPagerAction:
		m.state.ShowHelp = false
		return m.fetchHelpPager(views.HelpContent(m.renderer.Styles()))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// maxHelpScroll mirrors the clipping done by views.RenderHelp
func (m *Model) maxHelpScroll() int {
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	limit := views.HelpLineCount(m.renderer.Styles()) - visible
	if limit < 0 {
		return 0
	}
	return limit
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return m.setStatus("Help pager is not available")
	}
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(helpContent)}
	}
}

// setStatus shows message and schedules its removal
func (m *Model) setStatus(message string) tea.Cmd {
	m.statusID++
	id := m.statusID
	m.state.StatusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) drainPending() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// onSearchRequested hands the search downstream once the form has collapsed
func (m *Model) onSearchRequested(s searchform.State) {
	req := domain.SearchRequest{
		ID:          uuid.NewString(),
		TripType:    s.TripType,
		Origin:      s.Origin,
		Destination: s.Destination,
		Departure:   s.DepartureDate,
		Return:      s.ReturnDate,
		Passengers:  s.Passengers,
		FareClass:   s.FareClass,
		RequestedAt: time.Now(),
	}
	m.state.LastSearchID = req.ID
	if m.bus != nil {
		m.bus.Publish(eventbus.SearchRequestedEvent{Request: req})
	}
	m.pending = append(m.pending, m.setStatus(fmt.Sprintf("Searching %s → %s", s.Origin.City, s.Destination.City)))
}

// onPassengerEditorRequested opens the travelers editor
func (m *Model) onPassengerEditorRequested(current domain.PassengerCounts) {
	if m.bus != nil {
		m.bus.Publish(eventbus.PassengerEditorRequestedEvent{Current: current})
	}
	actions, cmd := m.inputHandler.ChangeMode(inputtypes.ModePassengers, m.context())
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			m.pending = append(m.pending, actionCmd)
		}
	}
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}
