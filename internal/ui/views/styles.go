package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	SubValue    lipgloss.Style
	Box         lipgloss.Style
	FocusedBox  lipgloss.Style
	DisabledBox lipgloss.Style
	Radio       lipgloss.Style
	RadioActive lipgloss.Style
	Focus       lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	SummaryBox  lipgloss.Style
	Route       lipgloss.Style
	Link        lipgloss.Style
	Picker      lipgloss.Style
	Highlight   lipgloss.Style
	Status      lipgloss.Style
	StatusWarn  lipgloss.Style
	Help        lipgloss.Style
	HelpBox     lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:       lipgloss.NewStyle().Bold(true),
		SubValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Box:         box,
		FocusedBox:  box.BorderForeground(lipgloss.Color("39")),
		DisabledBox: box.BorderForeground(lipgloss.Color("238")).Faint(true),
		Radio:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RadioActive: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Focus:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Button: lipgloss.NewStyle().
			Padding(0, 4).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")),
		ButtonFocus: lipgloss.NewStyle().
			Padding(0, 4).
			Bold(true).
			Background(lipgloss.Color("252")).
			Foreground(lipgloss.Color("16")),
		SummaryBox: box.Padding(0, 2),
		Route:      lipgloss.NewStyle().Bold(true),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Picker: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:       lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		HelpSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		HelpKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
