package logic

import "skyform/internal/domain"

// Stepper limits for the travelers editor
const (
	MinAdults     = 1
	MaxPassengers = 9
)

// PassengerBand is one row of the travelers editor
type PassengerBand int

const (
	BandAdults PassengerBand = iota
	BandChildren
	BandInfants
)

// PassengerBands lists editor rows top to bottom
var PassengerBands = []PassengerBand{BandAdults, BandChildren, BandInfants}

func (b PassengerBand) String() string {
	switch b {
	case BandAdults:
		return "Adults"
	case BandChildren:
		return "Children"
	case BandInfants:
		return "Infants"
	default:
		return "unknown"
	}
}

// Hint is the age range shown next to a band
func (b PassengerBand) Hint() string {
	switch b {
	case BandAdults:
		return "12+ years"
	case BandChildren:
		return "2-11 years"
	case BandInfants:
		return "under 2, on lap"
	default:
		return ""
	}
}

// Count returns the band's value in p
func (b PassengerBand) Count(p domain.PassengerCounts) int {
	switch b {
	case BandAdults:
		return p.Adults
	case BandChildren:
		return p.Children
	case BandInfants:
		return p.Infants
	default:
		return 0
	}
}

// Step adds delta to one band and returns the whole new count set. Steps
// that would leave fewer than one adult, more infants than adults, more than
// MaxPassengers travelers or a negative band are refused and p is returned.
func Step(p domain.PassengerCounts, band PassengerBand, delta int) domain.PassengerCounts {
	next := p
	switch band {
	case BandAdults:
		next.Adults += delta
	case BandChildren:
		next.Children += delta
	case BandInfants:
		next.Infants += delta
	default:
		return p
	}
	if !ValidPassengers(next) {
		return p
	}
	return next
}

// ValidPassengers reports whether p satisfies the stepper limits
func ValidPassengers(p domain.PassengerCounts) bool {
	return p.Adults >= MinAdults &&
		p.Children >= 0 &&
		p.Infants >= 0 &&
		p.Infants <= p.Adults &&
		p.Total() <= MaxPassengers
}
