package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the game view.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	More   key.Binding
	Less   key.Binding
	Pick   key.Binding
	Cancel key.Binding
	Deal   key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Hint   key.Binding
	New    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Deal, k.Undo, k.Hint, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.More, k.Less},
		{k.Pick, k.Cancel, k.Deal},
		{k.Undo, k.Redo, k.Hint},
		{k.New, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next column"),
		),
		More: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "grab more"),
		),
		Less: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "grab fewer"),
		),
		Pick: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "pick up / drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel pickup"),
		),
		Deal: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "deal a row"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "redo"),
		),
		Hint: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "hint"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
