package tabs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabkit/theme"
)

// Panel pairs a tab with the content shown while it is selected.
type Panel struct {
	Key      string
	Label    string
	Disabled bool
	// New builds the content model. It runs on every mount, so a lazy panel
	// that was unmounted starts over.
	New func() tea.Model
}

type Options struct {
	Config
	Panels []Panel
	Styles theme.TabsStyles
	Keys   KeyMap
	// Zone enables mouse selection. Callers must zone.Scan the final frame.
	Zone  *zone.Manager
	Width int
}

// Model is the Tabs root: it owns the Controller and hands it to the tab
// list, indicator and panels it renders.
type Model struct {
	ctrl    *Controller
	panels  []Panel
	content map[string]tea.Model
	styles  theme.TabsStyles
	keys    KeyMap
	zone    *zone.Manager
	width   int
	focused bool
	query   string
}

func NewModel(opts Options) *Model {
	keys := opts.Keys
	if len(keys.Next.Keys()) == 0 {
		keys = DefaultKeyMap(opts.Orientation)
	}
	m := &Model{
		ctrl:    New(opts.Config),
		content: map[string]tea.Model{},
		styles:  opts.Styles,
		keys:    keys,
		zone:    opts.Zone,
		width:   opts.Width,
	}
	for _, p := range opts.Panels {
		m.register(p)
	}
	return m
}

func (m *Model) Controller() *Controller { return m.ctrl }
func (m *Model) KeyMap() KeyMap          { return m.keys }
func (m *Model) Focused() bool           { return m.focused }
func (m *Model) SetWidth(w int)          { m.width = w }

// Content returns the mounted content model for key, or nil.
func (m *Model) Content(key string) tea.Model {
	return m.content[key]
}

// Init mounts the panels the lazy policy allows.
func (m *Model) Init() tea.Cmd {
	return m.syncMounts()
}

// Focus gives keyboard focus to the tab list.
func (m *Model) Focus() {
	m.focused = true
	m.ctrl.Focus(m.ctrl.RovingIndex())
}

func (m *Model) Blur() {
	m.focused = false
	m.query = ""
	m.ctrl.Blur()
}

// AddPanel registers p (or updates it when its key is known) and mounts it
// if the lazy policy says so.
func (m *Model) AddPanel(p Panel) (int, tea.Cmd) {
	idx := m.register(p)
	return idx, m.syncMounts()
}

// RemovePanel unregisters the panel with key and drops its content.
func (m *Model) RemovePanel(key string) tea.Cmd {
	for i, p := range m.panels {
		if p.Key == key {
			m.panels = append(m.panels[:i], m.panels[i+1:]...)
			break
		}
	}
	delete(m.content, key)
	m.ctrl.Unregister(key)
	return m.syncMounts()
}

func (m *Model) SetDisabled(key string, disabled bool) tea.Cmd {
	idx := m.ctrl.IndexOf(key)
	if idx < 0 {
		return nil
	}
	m.panels[idx].Disabled = disabled
	m.ctrl.SetDisabled(idx, disabled)
	return m.syncMounts()
}

func (m *Model) register(p Panel) int {
	idx := m.ctrl.Register(p.Key, TabOptions{Label: p.Label, Disabled: p.Disabled})
	if p.Key == "" {
		reg, _ := m.ctrl.Tab(idx)
		p.Key = reg.Key
	}
	if idx < len(m.panels) {
		m.panels[idx] = p
	} else {
		m.panels = append(m.panels, p)
	}
	return idx
}

// Update routes navigation keys to the controller while the tab list has
// focus, mouse clicks to the tab under the cursor, and everything else to the
// selected panel's content.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			break
		}
		if k, ok := m.keys.Translate(msg, m.ctrl.Orientation()); ok {
			m.query = ""
			m.ctrl.HandleKey(k, m.ctrl.RovingIndex())
			return m.syncMounts()
		}
		if msg.Type == tea.KeyRunes {
			m.typeahead(string(msg.Runes))
			return m.syncMounts()
		}
		m.query = ""
		return nil
	case tea.MouseMsg:
		if idx := m.hit(msg); idx >= 0 {
			m.focused = true
			m.ctrl.Focus(idx)
			m.ctrl.Select(idx)
			return m.syncMounts()
		}
	}
	return m.updateSelected(msg)
}

// typeahead focuses the tab whose label best matches the letters typed so
// far, starting a new query when the longer one stops matching.
func (m *Model) typeahead(s string) {
	m.query += s
	idx := m.ctrl.FindByLabel(m.query)
	if idx < 0 {
		m.query = s
		idx = m.ctrl.FindByLabel(m.query)
	}
	if idx >= 0 {
		m.ctrl.Focus(idx)
	}
}

func (m *Model) hit(msg tea.MouseMsg) int {
	if m.zone == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return -1
	}
	for i, reg := range m.ctrl.Tabs() {
		if z := m.zone.Get(reg.ID); z != nil && z.InBounds(msg) {
			return i
		}
	}
	return -1
}

func (m *Model) updateSelected(msg tea.Msg) tea.Cmd {
	key := m.ctrl.SelectedKey()
	c, ok := m.content[key]
	if !ok || c == nil {
		return nil
	}
	next, cmd := c.Update(msg)
	m.content[key] = next
	return cmd
}

// syncMounts creates content for panels that became mounted and drops
// content of panels that were unmounted.
func (m *Model) syncMounts() tea.Cmd {
	var cmds []tea.Cmd
	for i, p := range m.panels {
		mounted := m.ctrl.PanelMounted(i)
		_, has := m.content[p.Key]
		switch {
		case mounted && !has && p.New != nil:
			c := p.New()
			m.content[p.Key] = c
			cmds = append(cmds, c.Init())
		case !mounted && has:
			delete(m.content, p.Key)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	list := TabList{Ctrl: m.ctrl, Styles: m.styles, Zone: m.zone, Width: m.width, Focused: m.focused}.View()
	panels := TabPanels{Ctrl: m.ctrl, Styles: m.styles, Content: m.panelView}.View()

	if m.ctrl.Orientation() == Vertical {
		ind := TabIndicator{Ctrl: m.ctrl, Styles: m.styles, Length: lipgloss.Height(list)}.View()
		side := list
		if ind != "" {
			side = lipgloss.JoinHorizontal(lipgloss.Top, list, ind)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, side, " ", panels)
	}

	length := m.width
	if length <= 0 {
		length = lipgloss.Width(list)
	}
	parts := []string{list}
	if ind := (TabIndicator{Ctrl: m.ctrl, Styles: m.styles, Length: length}).View(); ind != "" {
		parts = append(parts, ind)
	}
	parts = append(parts, panels)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) panelView(index int) string {
	if index < 0 || index >= len(m.panels) {
		return ""
	}
	c := m.content[m.panels[index].Key]
	if c == nil {
		return ""
	}
	return c.View()
}
