package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the inspector.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Normalize key.Binding
	Labels    key.Binding
	Save      key.Binding
	Snapshot  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Grow, k.Shrink, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down, k.Left, k.Right},
		{k.Grow, k.Shrink, k.Normalize, k.Labels},
		{k.Save, k.Snapshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next shape"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev shape"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink"),
		),
		Normalize: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "normalize rect"),
		),
		Labels: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "toggle labels"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save scene"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
