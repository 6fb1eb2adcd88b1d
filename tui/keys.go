package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the interactive bindings.
type KeyMap struct {
	Pause     key.Binding
	Step      key.Binding
	Restart   key.Binding
	Algorithm key.Binding
	Diagonal  key.Binding
	Symmetry  key.Binding
	Walls     key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause:     key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Step:      key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "single step")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Algorithm: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "next algorithm")),
		Diagonal:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diagonals")),
		Symmetry:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "symmetry reduction")),
		Walls:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "random walls")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear walls")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Algorithm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Restart},
		{k.Algorithm, k.Diagonal, k.Symmetry},
		{k.Walls, k.Clear},
		{k.Help, k.Quit},
	}
}
