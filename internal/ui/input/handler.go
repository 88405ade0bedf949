package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/ui/input/modes"
	"skyform/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // shared by the text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeLocation] = modes.NewLocationMode(h.textInput)
	h.modes[types.ModeDate] = modes.NewDateMode(h.textInput)
	h.modes[types.ModePassengers] = modes.NewPassengersMode()
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// HandleKey routes msg to the current mode and applies any mode changes it
// asks for. Keys a text mode does not consume are fed to the text input.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action
	modeChanged := false

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		modeChanged = true
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	if h.isTextMode(h.currentMode) && !consumed && !modeChanged {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		text := h.textInput.Value()
		allActions = append(allActions, types.UpdateTextAction{Text: text})
		if observer, ok := h.modes[h.currentMode].(types.TextChangeHandler); ok && text != before {
			allActions = append(allActions, observer.TextChanged(text, ctx)...)
		}
	}

	return allActions, cmd
}

// switchMode runs the exit hook of the current mode and the enter hook of
// the next one. Text input focus follows the mode.
func (h *Handler) switchMode(next types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = next
	if h.isTextMode(next) {
		h.textInput.Reset()
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}

	if handler := h.modes[next]; handler != nil {
		actions = append(actions, handler.Enter(ctx)...)
	}
	if h.isTextMode(next) {
		actions = append(actions, types.UpdateTextAction{Text: h.textInput.Value()})
	}
	return actions
}

// ChangeMode switches mode outside of key handling, e.g. when a form hook
// opens the travelers editor
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	actions := h.switchMode(mode, ctx)
	if h.isTextMode(mode) {
		return actions, textinput.Blink
	}
	return actions, nil
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the shared text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeLocation, types.ModeDate:
		return true
	default:
		return false
	}
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
