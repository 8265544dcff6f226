package focus

// Manager records the id of the element that currently has focus. Components
// move focus by id; they never hold a pointer to each other.
//
// A Manager is not safe for concurrent use; it lives on the bubbletea update
// goroutine like the rest of the view state.
type Manager struct {
	current   string
	listeners []func(prev, next string)
}

func NewManager() *Manager {
	return &Manager{}
}

// Focus moves focus to id. An empty id is the same as Blur.
func (m *Manager) Focus(id string) {
	if m == nil || id == m.current {
		return
	}
	prev := m.current
	m.current = id
	m.notify(prev, id)
}

func (m *Manager) Blur() {
	if m == nil || m.current == "" {
		return
	}
	prev := m.current
	m.current = ""
	m.notify(prev, "")
}

func (m *Manager) Current() string {
	if m == nil {
		return ""
	}
	return m.current
}

func (m *Manager) IsFocused(id string) bool {
	return m != nil && id != "" && m.current == id
}

// OnChange registers fn to run after every focus change.
func (m *Manager) OnChange(fn func(prev, next string)) {
	if m == nil || fn == nil {
		return
	}
	m.listeners = append(m.listeners, fn)
}

func (m *Manager) notify(prev, next string) {
	for _, fn := range m.listeners {
		fn(prev, next)
	}
}
