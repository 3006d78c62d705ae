package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global key bindings plus the timer transport keys
// surfaced in the help bar. Views keep their own local bindings for
// keys that only exist inside them.
type KeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	NextView      key.Binding
	PrevView      key.Binding
	ConsumeBanner key.Binding

	StartPause key.Binding
	Reset      key.Binding
	Edit       key.Binding
	Direction  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		ConsumeBanner: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to timer"),
		),
		StartPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit time"),
		),
		Direction: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "count up/down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.Reset, k.NextView, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartPause, k.Reset, k.Edit, k.Direction},
		{k.NextView, k.PrevView, k.ConsumeBanner},
		{k.Help, k.Quit},
	}
}
