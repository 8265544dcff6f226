package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/tabkit/tabs"
)

type appKeys struct {
	Quit        key.Binding
	SwitchFocus key.Binding
	Reset       key.Binding
	Toggle      key.Binding
	Help        key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tabs/panel")),
		Reset:       key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset saved")),
		Toggle:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "toggle activity tab")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// helpKeys joins the tab list bindings with the app's own for the footer.
type helpKeys struct {
	tabs tabs.KeyMap
	app  appKeys
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.tabs.ShortHelp(), h.app.SwitchFocus, h.app.Reset, h.app.Help, h.app.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.tabs.FullHelp(), []key.Binding{h.app.SwitchFocus, h.app.Reset, h.app.Toggle, h.app.Help, h.app.Quit})
}
