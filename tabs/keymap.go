package tabs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to tab list navigation. It satisfies
// help.KeyMap.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns bindings for the arrow keys that match orientation.
func DefaultKeyMap(o Orientation) KeyMap {
	k := KeyMap{
		Next:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab")),
		Prev:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev tab")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first tab")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last tab")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	}
	if o == Vertical {
		k.Next = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next tab"))
		k.Prev = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev tab"))
	}
	return k
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.First, k.Last, k.Activate}}
}

// Translate maps a key press onto the controller's key names.
func (k KeyMap) Translate(msg tea.KeyMsg, o Orientation) (Key, bool) {
	switch {
	case key.Matches(msg, k.Next):
		if o == Vertical {
			return KeyArrowDown, true
		}
		return KeyArrowRight, true
	case key.Matches(msg, k.Prev):
		if o == Vertical {
			return KeyArrowUp, true
		}
		return KeyArrowLeft, true
	case key.Matches(msg, k.First):
		return KeyHome, true
	case key.Matches(msg, k.Last):
		return KeyEnd, true
	case key.Matches(msg, k.Activate):
		if msg.Type == tea.KeySpace {
			return KeySpace, true
		}
		return KeyEnter, true
	}
	return "", false
}
