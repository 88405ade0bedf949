package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skyform/internal/searchform"
)

// renderSummary draws the collapsed row. It reads state only.
func (r *Renderer) renderSummary(state ViewState) string {
	sum := searchform.Summarize(state.Form, state.DateLayout)

	route := r.styles.Route.Render(sum.Route())
	modify := r.styles.Link.Render("Modify ▾")

	width := fieldWidth*2 + 3
	if w := lipgloss.Width(route) + lipgloss.Width(modify) + 4; w > width {
		width = w
	}
	gap := width - lipgloss.Width(route) - lipgloss.Width(modify)

	top := route + strings.Repeat(" ", gap) + modify
	details := r.styles.SubValue.Render(sum.Details())
	return r.styles.SummaryBox.Render(top + "\n" + details)
}
