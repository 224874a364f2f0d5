package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the clock's key bindings.
type KeyMap struct {
	NextScheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings shown in the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScheme, k.Help, k.Quit}
}

// FullHelp returns bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScheme},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextScheme: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next colors"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
