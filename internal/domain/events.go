package domain

import "time"

// EventType represents the type of domain event
type EventType string

const (
	EventSearchRequested          EventType = "search.requested"
	EventPassengerEditorRequested EventType = "passengers.editor_requested"
	EventConfigLoaded             EventType = "config.loaded"
	EventConfigSaved              EventType = "config.saved"
	EventError                    EventType = "error"
)

// DomainEvent is the base interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequest is what gets handed downstream when the user searches
type SearchRequest struct {
	ID          string
	TripType    TripType
	Origin      Location
	Destination Location
	Departure   DateSelection
	Return      DateSelection
	Passengers  PassengerCounts
	FareClass   FareClass
	RequestedAt time.Time
}

// SearchRequestedEvent is published when the search button is pressed
type SearchRequestedEvent struct {
	Request SearchRequest
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// PassengerEditorRequestedEvent is published when the travelers field is opened
type PassengerEditorRequestedEvent struct {
	Current PassengerCounts
}

func (e PassengerEditorRequestedEvent) Type() EventType { return EventPassengerEditorRequested }

// ConfigLoadedEvent is published after the config file is read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is published after the config file is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent carries a non-fatal error for display
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
