package domain

import (
	"strings"
	"time"
)

// TripType is the kind of journey being searched
type TripType string

const (
	OneWay    TripType = "One Way"
	RoundTrip TripType = "Round Trip"
	MultiCity TripType = "Multi City"
)

// TripTypes lists trip types in display order
var TripTypes = []TripType{OneWay, RoundTrip, MultiCity}

// ParseTripType maps a loose name ("one-way", "round trip", ...) to a TripType
func ParseTripType(s string) (TripType, bool) {
	norm := strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s)))
	for _, t := range TripTypes {
		if strings.ToLower(string(t)) == norm {
			return t, true
		}
	}
	return "", false
}

// FareClass is the cabin the traveler wants to book
type FareClass string

const (
	Economy        FareClass = "Economy"
	PremiumEconomy FareClass = "Premium Economy"
	Business       FareClass = "Business"
	First          FareClass = "First"
)

// FareClasses lists fare classes in display order
var FareClasses = []FareClass{Economy, PremiumEconomy, Business, First}

// ParseFareClass maps a loose name to a FareClass
func ParseFareClass(s string) (FareClass, bool) {
	norm := strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s)))
	for _, c := range FareClasses {
		if strings.ToLower(string(c)) == norm {
			return c, true
		}
	}
	return "", false
}

// FormView controls whether the full form or the summary row is shown
type FormView int

const (
	Expanded FormView = iota
	Collapsed
)

func (v FormView) String() string {
	if v == Collapsed {
		return "collapsed"
	}
	return "expanded"
}

// Location is an origin or destination as shown on the form
type Location struct {
	City        string
	AirportName string
}

// Airport is a suggestion record
type Airport struct {
	City        string
	Country     string
	AirportName string
	Code        string
}

// Location returns the form-facing part of the airport
func (a Airport) Location() Location {
	return Location{City: a.City, AirportName: a.AirportName}
}

// PassengerCounts holds travelers by age band. A booking needs at least one adult.
type PassengerCounts struct {
	Adults   int
	Children int
	Infants  int
}

// DefaultPassengers is one adult traveling alone
var DefaultPassengers = PassengerCounts{Adults: 1}

// Total returns the number of travelers across all bands
func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// UnsetDateLabel is what an unset date renders as
const UnsetDateLabel = "Select date"

// DefaultDateLayout renders dates as month/day/year without padding
const DefaultDateLayout = "1/2/2006"

// DateSelection is either unset or a concrete calendar date.
// The zero value is unset.
type DateSelection struct {
	date time.Time
	set  bool
}

// NoDate returns an unset selection
func NoDate() DateSelection {
	return DateSelection{}
}

// DateOf returns a selection holding the calendar day of t
func DateOf(t time.Time) DateSelection {
	y, m, d := t.Date()
	return DateSelection{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), set: true}
}

// IsSet reports whether a concrete date was picked
func (d DateSelection) IsSet() bool {
	return d.set
}

// Time returns the picked date and whether one is set
func (d DateSelection) Time() (time.Time, bool) {
	return d.date, d.set
}

// Format renders the date with layout, or the unset label
func (d DateSelection) Format(layout string) string {
	if !d.set {
		return UnsetDateLabel
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return d.date.Format(layout)
}

func (d DateSelection) String() string {
	return d.Format(DefaultDateLayout)
}

// Before reports whether both dates are set and d is strictly earlier than other
func (d DateSelection) Before(other DateSelection) bool {
	return d.set && other.set && d.date.Before(other.date)
}
