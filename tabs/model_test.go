package tabs

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/tabkit/theme"
)

type initMsg struct{ key string }

type counter struct {
	key   string
	count int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{key: c.key} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "+" {
		c.count++
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("%s=%d", c.key, c.count) }

func counterPanel(key string) Panel {
	return Panel{Key: key, Label: strings.ToUpper(key[:1]) + key[1:], New: func() tea.Model { return counter{key: key} }}
}

func newModel(t *testing.T, cfg Config) *Model {
	t.Helper()
	return NewModel(Options{
		Config: cfg,
		Panels: []Panel{counterPanel("alpha"), counterPanel("beta"), counterPanel("gamma")},
		Styles: theme.Default().Tabs(theme.TabsProps{}, theme.TabsOverrides{}),
	})
}

func press(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestModelInitMountsEagerPanels(t *testing.T) {
	m := newModel(t, Config{})
	msgs := collect(m.Init())
	require.Len(t, msgs, 3)
	for _, k := range []string{"alpha", "beta", "gamma"} {
		require.NotNil(t, m.Content(k))
	}
}

func TestModelLazyUnmountDropsContent(t *testing.T) {
	m := newModel(t, Config{Lazy: true})
	require.Equal(t, []tea.Msg{initMsg{key: "alpha"}}, collect(m.Init()))
	require.Nil(t, m.Content("beta"))

	m.Update(press("+"))
	require.Equal(t, "alpha=1", m.Content("alpha").View())

	m.Focus()
	msgs := collect(m.Update(press("right")))
	require.Equal(t, []tea.Msg{initMsg{key: "beta"}}, msgs)
	require.Nil(t, m.Content("alpha"))
	require.NotNil(t, m.Content("beta"))

	m.Update(press("left"))
	require.Equal(t, "alpha=0", m.Content("alpha").View(), "remount starts over")
}

func TestModelLazyKeepMountedKeepsState(t *testing.T) {
	m := newModel(t, Config{Lazy: true, LazyBehavior: LazyKeepMounted})
	m.Init()
	m.Update(press("+"))
	m.Focus()
	m.Update(press("right"))
	m.Update(press("left"))
	require.NotNil(t, m.Content("beta"))
	require.Equal(t, "alpha=1", m.Content("alpha").View())
}

func TestModelKeysIgnoredWhenBlurred(t *testing.T) {
	m := newModel(t, Config{})
	m.Init()
	m.Update(press("right"))
	require.Equal(t, 0, m.Controller().SelectedIndex())

	m.Focus()
	m.Update(press("right"))
	require.Equal(t, 1, m.Controller().SelectedIndex())

	m.Blur()
	require.Equal(t, -1, m.Controller().FocusedIndex())
}

func TestModelManualActivation(t *testing.T) {
	m := newModel(t, Config{Manual: true})
	m.Init()
	m.Focus()
	m.Update(press("right"))
	require.Equal(t, 0, m.Controller().SelectedIndex())
	m.Update(press(" "))
	require.Equal(t, 1, m.Controller().SelectedIndex())
	m.Update(press("right"))
	m.Update(press("enter"))
	require.Equal(t, 2, m.Controller().SelectedIndex())
}

func TestModelVerticalUsesDownArrow(t *testing.T) {
	m := newModel(t, Config{Orientation: Vertical})
	m.Init()
	m.Focus()
	m.Update(press("right"))
	require.Equal(t, 0, m.Controller().SelectedIndex())
	m.Update(press("down"))
	require.Equal(t, 1, m.Controller().SelectedIndex())
}

func TestModelTypeahead(t *testing.T) {
	m := newModel(t, Config{Manual: true})
	m.Init()
	m.Focus()
	m.Update(press("g"))
	require.Equal(t, 2, m.Controller().FocusedIndex())
	m.Update(press("b"))
	require.Equal(t, 1, m.Controller().FocusedIndex(), "a failed query restarts from the last letter")
	require.Equal(t, 0, m.Controller().SelectedIndex())
}

func TestModelAddRemoveAndDisablePanels(t *testing.T) {
	m := newModel(t, Config{})
	m.Init()

	idx, cmd := m.AddPanel(counterPanel("delta"))
	require.Equal(t, 3, idx)
	require.Equal(t, []tea.Msg{initMsg{key: "delta"}}, collect(cmd))

	m.Controller().Select(3)
	m.RemovePanel("delta")
	require.Nil(t, m.Content("delta"))
	require.Equal(t, "gamma", m.Controller().SelectedKey())

	m.SetDisabled("gamma", true)
	require.Equal(t, "alpha", m.Controller().SelectedKey())
	require.Nil(t, m.SetDisabled("missing", true))
}

func TestModelViewShowsLabelsAndSelectedPanel(t *testing.T) {
	m := newModel(t, Config{})
	m.Init()
	m.Controller().Select(1)
	out := ansi.Strip(m.View())
	for _, label := range []string{"Alpha", "Beta", "Gamma"} {
		require.Contains(t, out, label)
	}
	require.Contains(t, out, "beta=0")
	require.NotContains(t, out, "alpha=0")

	_, ok := m.Controller().IndicatorRect()
	require.True(t, ok, "rendering measures the tabs")
}

func TestModelVerticalView(t *testing.T) {
	m := newModel(t, Config{Orientation: Vertical})
	m.Init()
	out := ansi.Strip(m.View())
	require.Contains(t, out, "alpha=0")
	r, ok := m.Controller().IndicatorRect()
	require.True(t, ok)
	require.Equal(t, 0, r.Y)
}

func TestIndicatorAccountsForTabListFrame(t *testing.T) {
	m := NewModel(Options{
		Panels: []Panel{counterPanel("alpha"), counterPanel("beta")},
		Styles: theme.Default().Tabs(theme.TabsProps{}, theme.TabsOverrides{
			TabList: theme.Override{Padding: []int{1, 3}},
		}),
	})
	m.Init()
	m.View()
	r, ok := m.Controller().IndicatorRect()
	require.True(t, ok)
	require.Equal(t, 3, r.X)
	require.Equal(t, 1, r.Y)

	m.Controller().Select(1)
	m.View()
	next, ok := m.Controller().IndicatorRect()
	require.True(t, ok)
	require.Equal(t, r.X+r.Width, next.X)
}
