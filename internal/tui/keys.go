package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the shell key bindings.
type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	NextBlock   key.Binding
	PrevBlock   key.Binding
	Copy        key.Binding
	Logout      key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Escape      key.Binding
	Confirm     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("]", "J"),
			key.WithHelp("]", "next page"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("[", "K"),
			key.WithHelp("[", "prev page"),
		),
		NextBlock: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next block"),
		),
		PrevBlock: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev block"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy block"),
		),
		Logout: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "log out"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave input"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.PrevSection, k.NextBlock, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.NextBlock, k.PrevBlock},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Copy, k.Logout, k.Help, k.Quit},
	}
}
