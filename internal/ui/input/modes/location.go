package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/domain"
	"skyform/internal/ui/input/types"
	"skyform/internal/ui/logic"
)

// LocationMode filters airport suggestions as the user types and picks one
type LocationMode struct {
	TextInputMode
	field       logic.Field
	suggestions []domain.Airport
	index       int
}

func NewLocationMode(ti *textinput.Model) *LocationMode {
	return &LocationMode{
		TextInputMode: NewTextInputMode(types.ModeLocation, "location", ti),
	}
}

func (m *LocationMode) Enter(ctx types.Context) []types.Action {
	m.field = ctx.FocusedField()
	m.setValue("")
	return m.refresh("", ctx)
}

func (m *LocationMode) Exit(ctx types.Context) []types.Action {
	m.suggestions = nil
	m.index = 0
	return []types.Action{types.UpdateSuggestionsAction{}}
}

func (m *LocationMode) TextChanged(text string, ctx types.Context) []types.Action {
	return m.refresh(text, ctx)
}

func (m *LocationMode) refresh(query string, ctx types.Context) []types.Action {
	m.suggestions = ctx.Suggestions(query)
	m.index = 0
	return []types.Action{m.update()}
}

func (m *LocationMode) update() types.Action {
	return types.UpdateSuggestionsAction{
		Suggestions: m.suggestions,
		Index:       m.index,
	}
}

func (m *LocationMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.handleCommon(msg); ok {
		return actions, true
	}

	switch msg.String() {
	case "up", "ctrl+p":
		if len(m.suggestions) > 0 {
			m.index = (m.index - 1 + len(m.suggestions)) % len(m.suggestions)
		}
		return []types.Action{m.update()}, true

	case "down", "ctrl+n", "tab":
		if len(m.suggestions) > 0 {
			m.index = (m.index + 1) % len(m.suggestions)
		}
		return []types.Action{m.update()}, true

	case "enter":
		if len(m.suggestions) == 0 {
			return []types.Action{types.StatusAction{Message: "No airport matches \"" + m.value() + "\""}}, true
		}
		return []types.Action{
			types.SetLocationAction{Field: m.field, Airport: m.suggestions[m.index]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}

// Selected returns the highlighted suggestion, if any
func (m *LocationMode) Selected() (domain.Airport, bool) {
	if m.index < 0 || m.index >= len(m.suggestions) {
		return domain.Airport{}, false
	}
	return m.suggestions[m.index], true
}
