package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview's keyboard shortcuts
type KeyMap struct {
	Prev       key.Binding
	Next       key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	Open       key.Binding
	Close      key.Binding
	Quit       key.Binding
	Help       key.Binding
}

var DefaultKeyMap = KeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	SwipeLeft: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("L", "swipe left"),
	),
	SwipeRight: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("H", "swipe right"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Open, k.Close, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.SwipeLeft, k.SwipeRight},
		{k.Open, k.Close, k.Quit, k.Help},
	}
}
