// Package keys defines the form's key bindings. Normal mode matches against
// them and the footer renders them through bubbles/help.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding active on the form
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Left       key.Binding
	Right      key.Binding
	OneWay     key.Binding
	RoundTrip  key.Binding
	MultiCity  key.Binding
	Activate   key.Binding
	Swap       key.Binding
	Search     key.Binding
	Modify     key.Binding
	ToggleView key.Binding
	Help       key.Binding
	HelpPager  key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// Default is the built-in key map
var Default = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab/↓", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("S-tab/↑", "prev field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev option"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next option"),
	),
	OneWay: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "one way"),
	),
	RoundTrip: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "round trip"),
	),
	MultiCity: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "multi city"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "edit"),
	),
	Swap: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "swap from/to"),
	),
	Search: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "search"),
	),
	Modify: key.NewBinding(
		key.WithKeys("enter", "m"),
		key.WithHelp("enter/m", "modify"),
	),
	ToggleView: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "collapse/expand"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	HelpPager: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "help in pager"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Swap, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right},
		{k.OneWay, k.RoundTrip, k.MultiCity, k.Activate},
		{k.Swap, k.Search, k.ToggleView, k.Modify},
		{k.Help, k.HelpPager, k.Quit},
	}
}

// CollapsedKeyMap is the footer shown over the summary row
type CollapsedKeyMap struct {
	KeyMap
}

// ShortHelp implements help.KeyMap
func (k CollapsedKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Modify, k.Help, k.Quit}
}
