package modal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tabkit/theme"
)

const RoleDialog = "dialog"

// Focuser is the focus owner the dialog reads the trigger from and moves
// focus through.
type Focuser interface {
	Focus(id string)
	Current() string
}

// Action is a focusable button in the dialog footer. Activating it closes the
// dialog and then runs Run.
type Action struct {
	ID     string
	Label  string
	Danger bool
	Run    func() tea.Cmd
}

type Config struct {
	ID      string
	Title   string
	Body    string
	Actions []Action
	// InitialFocus is the action ID focused on open; empty means the first
	// action.
	InitialFocus string
	// ReturnFocus overrides the element focused on close; empty means the
	// element that had focus when the dialog opened.
	ReturnFocus string
	// EscapeDisabled keeps the dialog open on Esc.
	EscapeDisabled bool
	Role           string
	OnClose        func()
	Focus          Focuser
	Styles         theme.ModalStyles
	Keys           KeyMap
}

type Modal struct {
	cfg     Config
	keys    KeyMap
	open    bool
	focused int
	trigger string
}

func New(cfg Config) *Modal {
	if cfg.ID == "" {
		cfg.ID = "modal"
	}
	if cfg.Role == "" {
		cfg.Role = RoleDialog
	}
	keys := cfg.Keys
	if len(keys.Next.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	return &Modal{cfg: cfg, keys: keys, focused: -1}
}

func (m *Modal) ID() string      { return m.cfg.ID }
func (m *Modal) Role() string    { return m.cfg.Role }
func (m *Modal) IsOpen() bool    { return m.open }
func (m *Modal) Trigger() string { return m.trigger }
func (m *Modal) Keys() KeyMap    { return m.keys }

// ActionElementID is the focus id of the action with the given ID.
func (m *Modal) ActionElementID(actionID string) string {
	return m.cfg.ID + "--" + actionID
}

// FocusedAction returns the ID of the focused action, or "" when closed.
func (m *Modal) FocusedAction() string {
	if !m.open || m.focused < 0 || m.focused >= len(m.cfg.Actions) {
		return ""
	}
	return m.cfg.Actions[m.focused].ID
}

// Open shows the dialog, remembers the current focus owner as the trigger and
// moves focus to the initial action.
func (m *Modal) Open() {
	if m.open {
		return
	}
	m.open = true
	if m.cfg.Focus != nil {
		m.trigger = m.cfg.Focus.Current()
	}
	m.focused = m.actionIndex(m.cfg.InitialFocus)
	if m.focused < 0 && len(m.cfg.Actions) > 0 {
		m.focused = 0
	}
	m.syncFocus()
}

// Close hides the dialog and returns focus.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.focused = -1
	if m.cfg.Focus != nil {
		target := m.cfg.ReturnFocus
		if target == "" {
			target = m.trigger
		}
		m.cfg.Focus.Focus(target)
	}
	if m.cfg.OnClose != nil {
		m.cfg.OnClose()
	}
}

// Update handles keys while the dialog is open. Every key is swallowed so
// nothing underneath reacts while the dialog traps focus.
func (m *Modal) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	if !m.open {
		return false, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(km, m.keys.Close):
		if !m.cfg.EscapeDisabled {
			m.Close()
		}
	case key.Matches(km, m.keys.Next):
		m.cycle(1)
	case key.Matches(km, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(km, m.keys.Activate):
		cmd = m.activate()
	}
	return true, cmd
}

func (m *Modal) activate() tea.Cmd {
	if m.focused < 0 || m.focused >= len(m.cfg.Actions) {
		return nil
	}
	action := m.cfg.Actions[m.focused]
	m.Close()
	if action.Run == nil {
		return nil
	}
	return action.Run()
}

func (m *Modal) cycle(dir int) {
	n := len(m.cfg.Actions)
	if n == 0 {
		return
	}
	m.focused = ((m.focused+dir)%n + n) % n
	m.syncFocus()
}

func (m *Modal) syncFocus() {
	if m.cfg.Focus == nil || m.focused < 0 {
		return
	}
	m.cfg.Focus.Focus(m.ActionElementID(m.cfg.Actions[m.focused].ID))
}

func (m *Modal) actionIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, a := range m.cfg.Actions {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// View renders the dialog card, or "" when closed.
func (m *Modal) View() string {
	if !m.open {
		return ""
	}
	s := m.cfg.Styles
	var parts []string
	if m.cfg.Title != "" {
		parts = append(parts, s.Header.Render(m.cfg.Title))
	}
	if m.cfg.Body != "" {
		parts = append(parts, s.Body.Render(m.cfg.Body))
	}
	if len(m.cfg.Actions) > 0 {
		buttons := make([]string, 0, len(m.cfg.Actions)*2)
		for i, a := range m.cfg.Actions {
			style := s.Button
			if a.Danger {
				style = s.DangerButton
			}
			if i == m.focused {
				style = s.FocusedButton
			}
			if i > 0 {
				buttons = append(buttons, " ")
			}
			buttons = append(buttons, style.Render(a.Label))
		}
		parts = append(parts, s.Footer.Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...)))
	}
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Overlay composites the open dialog over base; a closed dialog returns base
// unchanged.
func (m *Modal) Overlay(base string, width, height int) string {
	if !m.open {
		return base
	}
	return Overlay(base, m.View(), width, height)
}
