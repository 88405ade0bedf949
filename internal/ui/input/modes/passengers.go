package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/domain"
	"skyform/internal/ui/input/types"
	"skyform/internal/ui/logic"
)

// PassengersMode is the travelers stepper. It edits a draft and hands the
// whole count set back on confirm.
type PassengersMode struct {
	draft domain.PassengerCounts
	band  int
}

func NewPassengersMode() *PassengersMode {
	return &PassengersMode{}
}

func (m *PassengersMode) Name() string {
	return "passengers"
}

func (m *PassengersMode) Enter(ctx types.Context) []types.Action {
	m.draft = ctx.Form().Passengers
	if !logic.ValidPassengers(m.draft) {
		m.draft = domain.DefaultPassengers
	}
	m.band = 0
	return []types.Action{m.update()}
}

func (m *PassengersMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PassengersMode) update() types.Action {
	return types.UpdatePassengerDraftAction{Counts: m.draft, Band: logic.PassengerBands[m.band]}
}

func (m *PassengersMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		return []types.Action{
			types.SetPassengersAction{Counts: m.draft},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k", "shift+tab":
		if m.band > 0 {
			m.band--
		}
		return []types.Action{m.update()}, true

	case "down", "j", "tab":
		if m.band < len(logic.PassengerBands)-1 {
			m.band++
		}
		return []types.Action{m.update()}, true

	case "right", "l", "+", "=":
		m.draft = logic.Step(m.draft, logic.PassengerBands[m.band], 1)
		return []types.Action{m.update()}, true

	case "left", "h", "-", "_":
		m.draft = logic.Step(m.draft, logic.PassengerBands[m.band], -1)
		return []types.Action{m.update()}, true
	}

	return nil, false
}
