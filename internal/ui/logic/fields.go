package logic

// Field identifies a focusable control on the expanded form
type Field int

const (
	FieldTripType Field = iota
	FieldOrigin
	FieldDestination
	FieldDeparture
	FieldReturn
	FieldTravelers
	FieldFareClass
	FieldSearch
)

// FieldOrder is the tab order of the form
var FieldOrder = []Field{
	FieldTripType,
	FieldOrigin,
	FieldDestination,
	FieldDeparture,
	FieldReturn,
	FieldTravelers,
	FieldFareClass,
	FieldSearch,
}

func (f Field) String() string {
	switch f {
	case FieldTripType:
		return "Trip type"
	case FieldOrigin:
		return "From"
	case FieldDestination:
		return "To"
	case FieldDeparture:
		return "Departure"
	case FieldReturn:
		return "Return"
	case FieldTravelers:
		return "Travelers"
	case FieldFareClass:
		return "Fare"
	case FieldSearch:
		return "Search"
	default:
		return "unknown"
	}
}

// IsLocation reports whether f picks an airport
func (f Field) IsLocation() bool {
	return f == FieldOrigin || f == FieldDestination
}

// IsDate reports whether f holds a date
func (f Field) IsDate() bool {
	return f == FieldDeparture || f == FieldReturn
}

// MoveFocus steps delta places through FieldOrder, wrapping at both ends.
// skip reports fields that cannot take focus right now.
func MoveFocus(current Field, delta int, skip func(Field) bool) Field {
	n := len(FieldOrder)
	idx := 0
	for i, f := range FieldOrder {
		if f == current {
			idx = i
			break
		}
	}

	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	for moved := 0; moved < delta; {
		idx = ((idx+step)%n + n) % n
		if skip != nil && skip(FieldOrder[idx]) {
			if FieldOrder[idx] == current {
				break
			}
			continue
		}
		moved++
	}
	return FieldOrder[idx]
}

// Cycle returns the element delta places after current in options, wrapping
func Cycle[T comparable](options []T, current T, delta int) T {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}
