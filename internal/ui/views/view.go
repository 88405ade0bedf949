package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"skyform/internal/domain"
	"skyform/internal/searchform"
	"skyform/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Form       searchform.State
	Focus      logic.Field
	DateLayout string

	InputMode       string // "normal", "location", "date", "passengers", "help"
	Editing         logic.Field
	TextInput       string
	Suggestions     []domain.Airport
	SuggestionIndex int
	PassengerDraft  domain.PassengerCounts
	PassengerBand   logic.PassengerBand

	StatusMessage    string
	ShowHelp         bool
	HelpScrollOffset int
	ShowKeyHelp      bool
	HelpModel        help.Model
	KeyMap           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.Form.View == domain.Collapsed {
		content.WriteString(r.renderSummary(state))
	} else {
		content.WriteString(r.renderForm(state))
		if editor := r.renderEditor(state); editor != "" {
			content.WriteString("\n")
			content.WriteString(editor)
		}
		for _, w := range Warnings(state.Form) {
			content.WriteString("\n")
			content.WriteString(r.styles.StatusWarn.Render("! " + w))
		}
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	if state.ShowKeyHelp && state.KeyMap != nil {
		content.WriteString("\n\n")
		content.WriteString(state.HelpModel.View(state.KeyMap))
	}

	main := r.styles.Main.Render(content.String())

	if state.ShowHelp {
		return r.renderHelpPopup(state)
	}
	return main
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("skyform")
	mode := ""
	if state.InputMode != "" && state.InputMode != "normal" {
		mode = r.styles.Dim.Render("[" + state.InputMode + "]")
	}
	if mode == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(mode)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + mode
}

func (r *Renderer) renderHelpPopup(state ViewState) string {
	popup := r.styles.HelpBox.Render(RenderHelp(r.styles, state.Height-4, state.HelpScrollOffset))
	if state.Width <= 0 || state.Height <= 0 {
		return popup
	}
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, popup)
}

// Warnings lists non-blocking hints about the form's current values
func Warnings(s searchform.State) []string {
	var out []string
	if s.SameEndpoints() {
		out = append(out, "From and To are the same place")
	}
	if s.ReturnBeforeDeparture() {
		out = append(out, "Return date is before the departure date")
	}
	return out
}
