package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit     key.Binding
	Help     key.Binding
	Back     key.Binding
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	Jump     key.Binding
	Mode     key.Binding
}

// TODO make configurable.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "j", " ", "pgdown"),
		key.WithHelp("↓/space/pgdn", "Next section"),
	),
	Previous: key.NewBinding(
		key.WithKeys("up", "k", "pgup"),
		key.WithHelp("↑/pgup", "Previous section"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home", "First section"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end", "Last section"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "Jump to section"),
	),
	Mode: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "Snap/scroll mode"),
	),
}
