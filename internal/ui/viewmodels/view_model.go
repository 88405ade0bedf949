package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"skyform/internal/config"
	"skyform/internal/domain"
	"skyform/internal/searchform"
	"skyform/internal/ui/input/keys"
	"skyform/internal/ui/input/types"
	"skyform/internal/ui/state"
	"skyform/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	width     int
	height    int
	help      help.Model
	mode      types.Mode
	textInput string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		help:   help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.mode = mode
}

// SetTextInput stores the rendered text input line
func (vm *ViewModel) SetTextInput(rendered string) {
	vm.textInput = rendered
}

// BuildViewState assembles everything the renderer needs from form
func (vm *ViewModel) BuildViewState(form searchform.State) views.ViewState {
	var keyMap help.KeyMap = keys.Default
	if form.View == domain.Collapsed {
		keyMap = keys.CollapsedKeyMap{KeyMap: keys.Default}
	}

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Form:             form,
		Focus:            vm.state.Focus,
		DateLayout:       vm.config.DateFormat,
		InputMode:        vm.mode.String(),
		Editing:          vm.state.Focus,
		TextInput:        vm.textInput,
		Suggestions:      vm.state.Suggestions,
		SuggestionIndex:  vm.state.SuggestionIndex,
		PassengerDraft:   vm.state.PassengerDraft,
		PassengerBand:    vm.state.PassengerBand,
		StatusMessage:    vm.state.StatusMessage,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		ShowKeyHelp:      vm.config.UISettings.ShowKeyHelp,
		HelpModel:        vm.help,
		KeyMap:           keyMap,
	}
}
