package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skyform/internal/domain"
	"skyform/internal/searchform"
	"skyform/internal/ui/logic"
)

const fieldWidth = 30

func (r *Renderer) renderForm(state ViewState) string {
	s := state.Form
	rows := []string{
		renderOptions(r.styles, domain.TripTypes, s.TripType, state.Focus == logic.FieldTripType),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			r.renderField(state, logic.FieldOrigin, "FROM", s.Origin.City, s.Origin.AirportName, false),
			r.styles.Dim.Render(" ⇄ "),
			r.renderField(state, logic.FieldDestination, "TO", s.Destination.City, s.Destination.AirportName, false),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			r.renderDateField(state, logic.FieldDeparture, "DEPARTURE", s.DepartureDate, false),
			"   ",
			r.renderDateField(state, logic.FieldReturn, "RETURN", s.ReturnDate, !s.ReturnDateEnabled()),
		),
		r.renderField(state, logic.FieldTravelers, "TRAVELERS",
			searchform.PassengerSummary(s.Passengers.Total()), passengerBreakdown(s.Passengers), false),
		renderOptions(r.styles, domain.FareClasses, s.FareClass, state.Focus == logic.FieldFareClass),
		"",
		r.renderButton("Search", state.Focus == logic.FieldSearch),
	}
	return strings.Join(rows, "\n")
}

func renderOptions[T ~string](styles *Styles, options []T, selected T, focused bool) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		if o == selected {
			parts = append(parts, styles.RadioActive.Render("◉ "+string(o)))
		} else {
			parts = append(parts, styles.Radio.Render("○ "+string(o)))
		}
	}
	line := strings.Join(parts, "   ")
	if focused {
		return styles.Focus.Render("› ") + line
	}
	return "  " + line
}

func (r *Renderer) renderField(state ViewState, field logic.Field, label, value, sub string, disabled bool) string {
	box := r.styles.Box
	switch {
	case disabled:
		box = r.styles.DisabledBox
	case state.Focus == field:
		box = r.styles.FocusedBox
	}
	body := strings.Join([]string{
		r.styles.Label.Render(label),
		r.styles.Value.Render(truncate(value, fieldWidth)),
		r.styles.SubValue.Render(truncate(sub, fieldWidth)),
	}, "\n")
	return box.Width(fieldWidth).Render(body)
}

func (r *Renderer) renderDateField(state ViewState, field logic.Field, label string, d domain.DateSelection, disabled bool) string {
	sub := ""
	if t, ok := d.Time(); ok {
		sub = t.Weekday().String()
	}
	if disabled {
		sub = "One way"
	}
	return r.renderField(state, field, label, d.Format(state.DateLayout), sub, disabled)
}

func (r *Renderer) renderButton(label string, focused bool) string {
	if focused {
		return r.styles.ButtonFocus.Render(label)
	}
	return r.styles.Button.Render(label)
}

func (r *Renderer) renderEditor(state ViewState) string {
	switch state.InputMode {
	case "location":
		return r.renderLocationPicker(state)
	case "date":
		return r.renderDateEditor(state)
	case "passengers":
		return r.renderPassengerEditor(state)
	}
	return ""
}

func (r *Renderer) renderLocationPicker(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Label.Render(state.Editing.String() + ": "))
	b.WriteString(state.TextInput)
	b.WriteString("\n")

	if len(state.Suggestions) == 0 {
		b.WriteString(r.styles.Dim.Render("No matching airports"))
	}
	for i, a := range state.Suggestions {
		line := fmt.Sprintf("%s  %s, %s · %s", a.Code, a.City, a.Country, a.AirportName)
		if i == state.SuggestionIndex {
			b.WriteString(r.styles.Highlight.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(state.Suggestions)-1 {
			b.WriteString("\n")
		}
	}
	return r.styles.Picker.Render(b.String())
}

func (r *Renderer) renderDateEditor(state ViewState) string {
	body := r.styles.Label.Render(state.Editing.String()+" date: ") + state.TextInput + "\n" +
		r.styles.Dim.Render("e.g. 12/25/2024 or 2024-12-25 · empty clears · esc cancels")
	return r.styles.Picker.Render(body)
}

func (r *Renderer) renderPassengerEditor(state ViewState) string {
	lines := make([]string, 0, len(logic.PassengerBands)+2)
	for _, band := range logic.PassengerBands {
		label := fmt.Sprintf("%-9s %-16s", band.String(), r.styles.Dim.Render(band.Hint()))
		stepper := fmt.Sprintf("−  %d  +", band.Count(state.PassengerDraft))
		if band == state.PassengerBand {
			lines = append(lines, r.styles.Highlight.Render("› "+label+"  "+stepper))
		} else {
			lines = append(lines, "  "+label+"  "+stepper)
		}
	}
	lines = append(lines, "")
	lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("%s · max %d · enter applies · esc cancels",
		searchform.PassengerSummary(state.PassengerDraft.Total()), logic.MaxPassengers)))
	return r.styles.Picker.Render(strings.Join(lines, "\n"))
}

func passengerBreakdown(p domain.PassengerCounts) string {
	parts := []string{fmt.Sprintf("%d adult", p.Adults)}
	if p.Adults != 1 {
		parts[0] += "s"
	}
	if p.Children > 0 {
		parts = append(parts, fmt.Sprintf("%d child", p.Children))
		if p.Children > 1 {
			parts[len(parts)-1] += "ren"
		}
	}
	if p.Infants > 0 {
		parts = append(parts, fmt.Sprintf("%d infant", p.Infants))
		if p.Infants > 1 {
			parts[len(parts)-1] += "s"
		}
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
