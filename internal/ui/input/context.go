package input

import (
	"skyform/internal/airports"
	"skyform/internal/domain"
	"skyform/internal/searchform"
	"skyform/internal/ui/logic"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State    searchform.State
	Focus    logic.Field
	Layout   string
	Airports airports.Provider
}

func (c *ModelContext) Form() searchform.State {
	return c.State
}

func (c *ModelContext) FocusedField() logic.Field {
	return c.Focus
}

func (c *ModelContext) DateLayout() string {
	if c.Layout == "" {
		return domain.DefaultDateLayout
	}
	return c.Layout
}

func (c *ModelContext) Suggestions(query string) []domain.Airport {
	if c.Airports == nil {
		return nil
	}
	return c.Airports.Suggest(query)
}
