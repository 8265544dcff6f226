package modal

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the dialog's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Close    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Close}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Activate, k.Close}}
}
