package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/domain"
	"skyform/internal/ui/input/types"
	"skyform/internal/ui/logic"
)

// DateMode edits the departure or return date as text
type DateMode struct {
	TextInputMode
	field logic.Field
}

func NewDateMode(ti *textinput.Model) *DateMode {
	return &DateMode{
		TextInputMode: NewTextInputMode(types.ModeDate, "date", ti),
	}
}

func (m *DateMode) Enter(ctx types.Context) []types.Action {
	m.field = ctx.FocusedField()

	var current domain.DateSelection
	if m.field == logic.FieldReturn {
		current = ctx.Form().ReturnDate
	} else {
		current = ctx.Form().DepartureDate
	}
	if current.IsSet() {
		m.setValue(current.Format(ctx.DateLayout()))
	} else {
		m.setValue("")
	}
	return nil
}

func (m *DateMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DateMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.handleCommon(msg); ok {
		return actions, true
	}

	if msg.String() != "enter" {
		return nil, false
	}

	date, err := logic.ParseDate(m.value(), ctx.DateLayout())
	if err != nil {
		// stay in the editor so the input can be fixed
		return []types.Action{types.StatusAction{Message: err.Error()}}, true
	}
	return []types.Action{
		types.SetDateAction{Field: m.field, Date: date},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, true
}

// Field returns the date field being edited
func (m *DateMode) Field() logic.Field {
	return m.field
}
