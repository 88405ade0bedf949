package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/ui/input/types"
)

// HelpMode shows the key reference popup
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ShowHelpAction{Show: true}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ShowHelpAction{Show: false}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "?", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "j", "down":
		return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
	case "k", "up":
		return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
	case "pgdown", " ":
		return []types.Action{types.ScrollHelpAction{Delta: 10}}, true
	case "pgup":
		return []types.Action{types.ScrollHelpAction{Delta: -10}}, true
	case "H":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.OpenHelpPagerAction{},
		}, true
	}
	// swallow everything else while the popup is open
	return nil, true
}
