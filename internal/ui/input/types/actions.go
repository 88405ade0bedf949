package types

import (
	"skyform/internal/domain"
	"skyform/internal/ui/logic"
)

// Focus actions
type FocusAction struct {
	Delta int // +1 next field, -1 previous field
}

func (a FocusAction) Type() string { return "focus" }

// CycleAction steps the focused selector (trip type or fare class)
type CycleAction struct {
	Delta int
}

func (a CycleAction) Type() string { return "cycle" }

// Form actions
type SetTripTypeAction struct {
	TripType domain.TripType
}

func (a SetTripTypeAction) Type() string { return "set_trip_type" }

type SetLocationAction struct {
	Field   logic.Field
	Airport domain.Airport
}

func (a SetLocationAction) Type() string { return "set_location" }

type SetDateAction struct {
	Field logic.Field
	Date  domain.DateSelection
}

func (a SetDateAction) Type() string { return "set_date" }

type SetPassengersAction struct {
	Counts domain.PassengerCounts
}

func (a SetPassengersAction) Type() string { return "set_passengers" }

type SwapAction struct{}

func (a SwapAction) Type() string { return "swap" }

type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

type ToggleViewAction struct{}

func (a ToggleViewAction) Type() string { return "toggle_view" }

type RequestPassengersAction struct{}

func (a RequestPassengersAction) Type() string { return "request_passengers" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Picker state pushed to the view
type UpdateSuggestionsAction struct {
	Suggestions []domain.Airport
	Index       int
}

func (a UpdateSuggestionsAction) Type() string { return "update_suggestions" }

type UpdatePassengerDraftAction struct {
	Counts domain.PassengerCounts
	Band   logic.PassengerBand
}

func (a UpdatePassengerDraftAction) Type() string { return "update_passenger_draft" }

// Status bar
type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

// Help
type ShowHelpAction struct {
	Show bool
}

func (a ShowHelpAction) Type() string { return "show_help" }

type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
