package searchform

import (
	"fmt"
	"strings"

	"skyform/internal/domain"
)

// Summary is the read-only projection shown while the form is collapsed
type Summary struct {
	From       string
	To         string
	TripType   domain.TripType
	Dates      string
	Passengers string
	FareClass  domain.FareClass
}

// PassengerSummary renders a traveler total. Only exactly one is singular.
func PassengerSummary(total int) string {
	if total == 1 {
		return "1 Traveler"
	}
	return fmt.Sprintf("%d Travelers", total)
}

// DateRange renders the departure date and, for trips that have one, the
// return date. The return segment is left out entirely when it does not apply.
func DateRange(s State, layout string) string {
	dates := s.DepartureDate.Format(layout)
	if s.TripType != domain.OneWay && s.ReturnDate.IsSet() {
		dates += " - " + s.ReturnDate.Format(layout)
	}
	return dates
}

// Summarize projects s into its collapsed summary
func Summarize(s State, layout string) Summary {
	return Summary{
		From:       s.Origin.City,
		To:         s.Destination.City,
		TripType:   s.TripType,
		Dates:      DateRange(s, layout),
		Passengers: PassengerSummary(s.Passengers.Total()),
		FareClass:  s.FareClass,
	}
}

// Route renders "From → To"
func (s Summary) Route() string {
	return s.From + " → " + s.To
}

// Details renders the second summary line
func (s Summary) Details() string {
	parts := []string{s.Dates, string(s.TripType), s.Passengers}
	if s.FareClass != "" {
		parts = append(parts, string(s.FareClass))
	}
	return strings.Join(parts, " · ")
}

func (s Summary) String() string {
	return s.Route() + "\n" + s.Details()
}
