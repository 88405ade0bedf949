package state

import (
	"skyform/internal/domain"
	"skyform/internal/searchform"
	"skyform/internal/ui/logic"
)

// AppState holds everything the screen shows that is not a form field
type AppState struct {
	// Focus
	Focus logic.Field

	// Airport picker
	TextValue       string
	Suggestions     []domain.Airport
	SuggestionIndex int

	// Travelers editor
	PassengerDraft domain.PassengerCounts
	PassengerBand  logic.PassengerBand

	// UI state
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string
	LastSearchID     string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Focus:          logic.FieldTripType,
		PassengerDraft: domain.DefaultPassengers,
	}
}

// MoveFocus steps focus, skipping the return date while it has no meaning
func (s *AppState) MoveFocus(delta int, form searchform.State) {
	s.Focus = logic.MoveFocus(s.Focus, delta, func(f logic.Field) bool {
		return f == logic.FieldReturn && !form.ReturnDateEnabled()
	})
}

// EnsureFocusable moves focus off the return date when it becomes disabled
func (s *AppState) EnsureFocusable(form searchform.State) {
	if s.Focus == logic.FieldReturn && !form.ReturnDateEnabled() {
		s.Focus = logic.FieldDeparture
	}
}

// ClearPicker drops picker state after the airport picker closes
func (s *AppState) ClearPicker() {
	s.TextValue = ""
	s.Suggestions = nil
	s.SuggestionIndex = 0
}

// ScrollHelp moves the help popup, clamped to [0, max]
func (s *AppState) ScrollHelp(delta, max int) {
	s.HelpScrollOffset += delta
	if s.HelpScrollOffset > max {
		s.HelpScrollOffset = max
	}
	if s.HelpScrollOffset < 0 {
		s.HelpScrollOffset = 0
	}
}
