package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Classical     key.Binding
	Superposition key.Binding
	Entangle      key.Binding
	Cancel        key.Binding
	Measure       key.Binding
	NewGame       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Classical:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "classical")),
		Superposition: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "superpose")),
		Entangle:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "entangle")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Measure:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "measure")),
		NewGame:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Classical, k.Superposition, k.Entangle, k.Measure, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Classical, k.Superposition, k.Entangle, k.Cancel},
		{k.Measure, k.NewGame, k.Help, k.Quit},
	}
}
