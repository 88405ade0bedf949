// Package airports supplies the static airport suggestions offered by the
// origin and destination pickers.
package airports

import (
	"strings"

	"skyform/internal/domain"
)

// Provider is a read-only lookup over a fixed airport list
type Provider interface {
	All() []domain.Airport
	Suggest(query string) []domain.Airport
	ByCode(code string) (domain.Airport, bool)
}

var fixture = []domain.Airport{
	{City: "Dhaka", Country: "Bangladesh", AirportName: "Hazrat Shahjalal International Airport", Code: "DAC"},
	{City: "Chittagong", Country: "Bangladesh", AirportName: "Shah Amanat International", Code: "CGP"},
	{City: "Cox's Bazar", Country: "Bangladesh", AirportName: "Cox's Bazar", Code: "CXB"},
}

type staticProvider struct {
	airports []domain.Airport
}

// NewStatic returns a provider over the built-in fixture
func NewStatic() Provider {
	return NewProvider(fixture)
}

// NewProvider returns a provider over a copy of list
func NewProvider(list []domain.Airport) Provider {
	cp := make([]domain.Airport, len(list))
	copy(cp, list)
	return &staticProvider{airports: cp}
}

func (p *staticProvider) All() []domain.Airport {
	out := make([]domain.Airport, len(p.airports))
	copy(out, p.airports)
	return out
}

// Suggest returns airports whose city, code, name or country contains query.
// An empty query matches everything.
func (p *staticProvider) Suggest(query string) []domain.Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return p.All()
	}

	// exact code hits go first
	var exact, rest []domain.Airport
	for _, a := range p.airports {
		switch {
		case strings.ToLower(a.Code) == query:
			exact = append(exact, a)
		case matches(a, query):
			rest = append(rest, a)
		}
	}
	return append(exact, rest...)
}

func (p *staticProvider) ByCode(code string) (domain.Airport, bool) {
	for _, a := range p.airports {
		if strings.EqualFold(a.Code, strings.TrimSpace(code)) {
			return a, true
		}
	}
	return domain.Airport{}, false
}

func matches(a domain.Airport, query string) bool {
	return strings.Contains(strings.ToLower(a.City), query) ||
		strings.Contains(strings.ToLower(a.Code), query) ||
		strings.Contains(strings.ToLower(a.AirportName), query) ||
		strings.Contains(strings.ToLower(a.Country), query)
}
