package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Moving around", []helpEntry{
		{"tab/↓, j", "Next field"},
		{"shift+tab/↑, k", "Previous field"},
		{"←/→, h/l", "Change trip type or fare"},
		{"enter, space", "Edit the focused field"},
	}},
	{"Trip", []helpEntry{
		{"1 / 2 / 3", "One way / round trip / multi city"},
		{"x", "Swap from and to"},
		{"S", "Search and collapse the form"},
		{"v", "Collapse or expand the form"},
		{"enter, m", "Modify (while collapsed)"},
	}},
	{"Airport picker", []helpEntry{
		{"type", "Filter by city, code, airport or country"},
		{"↑/↓, tab", "Move through suggestions"},
		{"enter", "Pick the highlighted airport"},
		{"esc", "Cancel"},
	}},
	{"Dates", []helpEntry{
		{"12/25/2024", "Month/day/year"},
		{"2024-12-25", "ISO date"},
		{"empty + enter", "Clear the date"},
	}},
	{"Travelers", []helpEntry{
		{"↑/↓", "Choose adults, children or infants"},
		{"←/→, -/+", "Decrease or increase"},
		{"enter / esc", "Apply / discard"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"H", "Open this help in a pager"},
		{"q, ctrl+c", "Quit"},
	}},
}

// HelpContent renders the full key reference with colors
func HelpContent(styles *Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("skyform help"))
	b.WriteString("\n")
	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.HelpSection.Render(section.title))
		b.WriteString("\n")
		for _, e := range section.entries {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.HelpKey.Render(fmt.Sprintf("%-16s", e.keys)),
				styles.HelpDesc.Render(e.desc)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderHelp renders the key reference clipped to height lines starting at scrollOffset
func RenderHelp(styles *Styles, height, scrollOffset int) string {
	content := HelpContent(styles)
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	visible := append([]string(nil), lines[scrollOffset:scrollOffset+visibleHeight]...)
	more := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visible[0] = more.Render("↑ (more above)")
	}
	if scrollOffset+visibleHeight < totalLines {
		visible[len(visible)-1] = more.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}

// HelpLineCount is the number of lines in the full key reference
func HelpLineCount(styles *Styles) int {
	return strings.Count(HelpContent(styles), "\n") + 1
}
