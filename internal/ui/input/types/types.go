package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/domain"
	"skyform/internal/searchform"
	"skyform/internal/ui/logic"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeLocation
	ModeDate
	ModePassengers
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeLocation:
		return "location"
	case ModeDate:
		return "date"
	case ModePassengers:
		return "passengers"
	case ModeHelp:
		return "help"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Form() searchform.State
	FocusedField() logic.Field
	DateLayout() string
	Suggestions(query string) []domain.Airport
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// TextChangeHandler is implemented by text modes that react to every edit
type TextChangeHandler interface {
	TextChanged(text string, ctx Context) []Action
}
