package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the converter key bindings. It satisfies help.KeyMap.
type keyMap struct {
	NextFocus  key.Binding
	PrevFocus  key.Binding
	PrevUnit   key.Binding
	NextUnit   key.Binding
	Swap       key.Binding
	NextDomain key.Binding
	PrevDomain key.Binding
	Theme      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		PrevUnit: key.NewBinding(
			key.WithKeys("up", "left"),
			key.WithHelp("↑/←", "prev unit"),
		),
		NextUnit: key.NewBinding(
			key.WithKeys("down", "right"),
			key.WithHelp("↓/→", "next unit"),
		),
		Swap: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "swap"),
		),
		NextDomain: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next domain"),
		),
		PrevDomain: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev domain"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy result"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Swap, k.NextDomain, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.PrevUnit, k.NextUnit},
		{k.Swap, k.NextDomain, k.PrevDomain},
		{k.Theme, k.Copy, k.Help, k.Quit},
	}
}
