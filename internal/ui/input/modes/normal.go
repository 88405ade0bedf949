package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/domain"
	"skyform/internal/ui/input/keys"
	"skyform/internal/ui/input/types"
	"skyform/internal/ui/logic"
)

// NormalMode moves between fields and triggers form operations
type NormalMode struct {
	keys keys.KeyMap
}

func NewNormalMode() *NormalMode {
	return &NormalMode{keys: keys.Default}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	// Keys that work in both views
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	case key.Matches(msg, k.HelpPager):
		return []types.Action{types.OpenHelpPagerAction{}}, true
	case key.Matches(msg, k.ToggleView):
		return []types.Action{types.ToggleViewAction{}}, true
	}

	if ctx.Form().View == domain.Collapsed {
		if key.Matches(msg, k.Modify) {
			return []types.Action{types.ToggleViewAction{}}, true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, k.Next):
		return []types.Action{types.FocusAction{Delta: 1}}, true
	case key.Matches(msg, k.Prev):
		return []types.Action{types.FocusAction{Delta: -1}}, true
	case key.Matches(msg, k.Left):
		return m.cycle(ctx, -1)
	case key.Matches(msg, k.Right):
		return m.cycle(ctx, 1)
	case key.Matches(msg, k.OneWay):
		return []types.Action{types.SetTripTypeAction{TripType: domain.OneWay}}, true
	case key.Matches(msg, k.RoundTrip):
		return []types.Action{types.SetTripTypeAction{TripType: domain.RoundTrip}}, true
	case key.Matches(msg, k.MultiCity):
		return []types.Action{types.SetTripTypeAction{TripType: domain.MultiCity}}, true
	case key.Matches(msg, k.Swap):
		return []types.Action{types.SwapAction{}}, true
	case key.Matches(msg, k.Search):
		return []types.Action{types.SearchAction{}}, true
	case key.Matches(msg, k.Activate):
		return m.activate(ctx)
	}

	return nil, false
}

// cycle steps the selector under focus; other fields ignore left/right
func (m *NormalMode) cycle(ctx types.Context, delta int) ([]types.Action, bool) {
	switch ctx.FocusedField() {
	case logic.FieldTripType, logic.FieldFareClass:
		return []types.Action{types.CycleAction{Delta: delta}}, true
	}
	return nil, false
}

func (m *NormalMode) activate(ctx types.Context) ([]types.Action, bool) {
	field := ctx.FocusedField()
	switch {
	case field == logic.FieldTripType, field == logic.FieldFareClass:
		return []types.Action{types.CycleAction{Delta: 1}}, true
	case field.IsLocation():
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLocation}}, true
	case field == logic.FieldReturn && !ctx.Form().ReturnDateEnabled():
		return []types.Action{types.StatusAction{Message: "Return date is not used for one-way trips"}}, true
	case field.IsDate():
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDate}}, true
	case field == logic.FieldTravelers:
		return []types.Action{types.RequestPassengersAction{}}, true
	case field == logic.FieldSearch:
		return []types.Action{types.SearchAction{}}, true
	}
	return nil, false
}
