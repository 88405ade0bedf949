// Package searchform holds the state of a flight search form and the rules
// that tie its fields together. Rendering lives elsewhere; everything here is
// a pure state transition.
package searchform

import "skyform/internal/domain"

// Default origin and destination used when nothing else is configured
var (
	DefaultOrigin = domain.Location{
		City:        "Dhaka",
		AirportName: "Hazrat Shahjalal International Airport",
	}
	DefaultDestination = domain.Location{
		City:        "Chittagong",
		AirportName: "Shah Amanat International",
	}
)

// Hooks are the downstream actions the form asks for. Nil hooks are skipped.
type Hooks struct {
	OnSearchRequested          func(State)
	OnPassengerEditorRequested func(domain.PassengerCounts)
}

// State is a value copy of every form field
type State struct {
	TripType      domain.TripType
	Origin        domain.Location
	Destination   domain.Location
	Passengers    domain.PassengerCounts
	DepartureDate domain.DateSelection
	ReturnDate    domain.DateSelection
	FareClass     domain.FareClass
	View          domain.FormView
}

// DefaultState is the state of a freshly mounted form
func DefaultState() State {
	return State{
		TripType:    domain.OneWay,
		Origin:      DefaultOrigin,
		Destination: DefaultDestination,
		Passengers:  domain.DefaultPassengers,
		FareClass:   domain.Economy,
		View:        domain.Expanded,
	}
}

// Form owns one search form's state. It is not safe for concurrent use;
// callers drive it from a single event loop.
type Form struct {
	state State
	hooks Hooks
}

// New creates a form starting from initial
func New(initial State, hooks Hooks) *Form {
	return &Form{state: initial, hooks: hooks}
}

// NewDefault creates a form with the built-in defaults
func NewDefault(hooks Hooks) *Form {
	return New(DefaultState(), hooks)
}

// Snapshot returns a copy of the current state
func (f *Form) Snapshot() State {
	return f.state
}

// SetTripType changes the trip type. Entering One Way clears the return date.
func (f *Form) SetTripType(t domain.TripType) {
	f.state.TripType = t
	if t == domain.OneWay {
		f.state.ReturnDate = domain.NoDate()
	}
}

// SetOrigin replaces the origin. It may equal the destination.
func (f *Form) SetOrigin(loc domain.Location) {
	f.state.Origin = loc
}

// SetDestination replaces the destination. It may equal the origin.
func (f *Form) SetDestination(loc domain.Location) {
	f.state.Destination = loc
}

// Swap exchanges origin and destination in a single assignment
func (f *Form) Swap() {
	f.state.Origin, f.state.Destination = f.state.Destination, f.state.Origin
}

// SetPassengers replaces the counts wholesale. Bounds belong to the stepper.
func (f *Form) SetPassengers(p domain.PassengerCounts) {
	f.state.Passengers = p
}

// SetDepartureDate replaces the departure date
func (f *Form) SetDepartureDate(d domain.DateSelection) {
	f.state.DepartureDate = d
}

// SetReturnDate replaces the return date. No ordering against departure is enforced.
func (f *Form) SetReturnDate(d domain.DateSelection) {
	f.state.ReturnDate = d
}

// SetFareClass replaces the fare class
func (f *Form) SetFareClass(c domain.FareClass) {
	f.state.FareClass = c
}

// ToggleView flips between the full form and the summary row
func (f *Form) ToggleView() {
	if f.state.View == domain.Collapsed {
		f.state.View = domain.Expanded
	} else {
		f.state.View = domain.Collapsed
	}
}

// Search collapses the form and hands the state to OnSearchRequested
func (f *Form) Search() {
	f.state.View = domain.Collapsed
	if f.hooks.OnSearchRequested != nil {
		f.hooks.OnSearchRequested(f.state)
	}
}

// RequestPassengerEditor asks the collaborator to open the travelers editor
func (f *Form) RequestPassengerEditor() {
	if f.hooks.OnPassengerEditorRequested != nil {
		f.hooks.OnPassengerEditorRequested(f.state.Passengers)
	}
}

// ReturnDateEnabled reports whether a return date means anything for the trip type
func (s State) ReturnDateEnabled() bool {
	return s.TripType != domain.OneWay
}

// SameEndpoints reports whether origin and destination name the same place
func (s State) SameEndpoints() bool {
	return s.Origin == s.Destination
}

// ReturnBeforeDeparture reports a return date earlier than the departure date
func (s State) ReturnBeforeDeparture() bool {
	return s.ReturnDateEnabled() && s.ReturnDate.Before(s.DepartureDate)
}
