package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the stepper bindings.
type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Run   key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Run, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Run, k.Reset},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", " "),
		key.WithHelp("→/l", "apply gate"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "undo gate"),
	),
	Run: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "run to end"),
	),
	Reset: key.NewBinding(
		key.WithKeys("home", "r"),
		key.WithHelp("r", "reset"),
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
