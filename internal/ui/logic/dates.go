package logic

import (
	"fmt"
	"strings"
	"time"

	"skyform/internal/domain"
)

// DateLayouts are the formats accepted by the date editor, tried in order
var DateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"2 Jan 2006",
	"Jan 2 2006",
}

// ParseDate turns editor input into a selection. Blank input unsets the date.
// preferred is tried before the built-in layouts.
func ParseDate(input, preferred string) (domain.DateSelection, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.NoDate(), nil
	}

	layouts := DateLayouts
	if preferred != "" {
		layouts = append([]string{preferred}, DateLayouts...)
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, input); err == nil {
			return domain.DateOf(t), nil
		}
	}
	return domain.NoDate(), fmt.Errorf("unrecognised date %q (try 12/25/2024 or 2024-12-25)", input)
}
