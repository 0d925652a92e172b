package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the story browser bindings.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Placement key.Binding
	Toggle    key.Binding
	Hover     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab", "j"), key.WithHelp("tab/j", "next story")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "k"), key.WithHelp("shift+tab/k", "prev story")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "target up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "target down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "target left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "target right")),
		Placement: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle placement")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle popover")),
		Hover:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hover in/out")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Placement, k.Toggle, k.Hover, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.PageUp, k.PageDown},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Placement, k.Toggle, k.Hover},
		{k.Help, k.Quit},
	}
}
