package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/tabkit/internal/config"
	"github.com/jask/tabkit/internal/database"
	"github.com/jask/tabkit/internal/database/repository"
	"github.com/jask/tabkit/internal/service"
	"github.com/jask/tabkit/tabs"
)

type harness struct {
	app  *App
	repo *repository.SelectionRepo
}

func testConfig() config.Config {
	return config.Config{Tabs: config.TabsConfig{Lazy: true, LazyBehavior: "unmount"}}
}

func newHarness(t *testing.T, seed ...repository.Selection) harness {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewSelectionRepo(db)
	for _, s := range seed {
		require.NoError(t, repo.Upsert(ctx, s))
	}
	app, err := New(ctx, testConfig(), Services{
		Selections:  &service.SelectionService{Selections: repo},
		Maintenance: &service.MaintenanceService{DB: db},
	}, nil)
	require.NoError(t, err)
	app.Init()
	return harness{app: app, repo: repo}
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func (h harness) send(msg tea.Msg) []tea.Msg {
	_, cmd := h.app.Update(msg)
	msgs := run(cmd)
	for _, m := range msgs {
		h.app.Update(m)
	}
	return msgs
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestAppPersistsSelectionChanges(t *testing.T) {
	h := newHarness(t)
	msgs := h.send(tea.KeyMsg{Type: tea.KeyRight})
	require.Len(t, msgs, 1)
	require.IsType(t, savedMsg{}, msgs[0])

	got, err := h.repo.Get(context.Background(), tabs.SetID(SetName))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "counter", got.TabKey)
	require.Equal(t, 1, got.TabIndex)
	require.Contains(t, h.app.activity, `selected "counter"`)
}

func TestAppRestoresSavedSelection(t *testing.T) {
	h := newHarness(t, repository.Selection{SetID: tabs.SetID(SetName), SetName: SetName, TabKey: activityKey, TabIndex: 2})
	ctrl := h.app.Tabs().Controller()
	require.Equal(t, activityKey, ctrl.SelectedKey())
	require.NotNil(t, h.app.Tabs().Content(activityKey))
	require.Nil(t, h.app.Tabs().Content("overview"), "lazy panels mount on the restored tab only")
}

func TestAppResetDialogFocusesCancel(t *testing.T) {
	h := newHarness(t)
	tabID := h.app.focus.Current()
	require.NotEmpty(t, tabID)

	h.send(runes("R"))
	require.True(t, h.app.reset.IsOpen())
	require.Equal(t, "cancel", h.app.reset.FocusedAction())
	require.Equal(t, "reset--cancel", h.app.focus.Current())

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, h.app.reset.IsOpen())
	require.Equal(t, tabID, h.app.focus.Current())
	require.Empty(t, h.app.Status())
}

func TestAppResetDialogConfirm(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	list, err := h.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	h.send(runes("R"))
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "confirm", h.app.reset.FocusedAction())
	msgs := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []tea.Msg{statusMsg("saved selections cleared")}, msgs)
	require.Equal(t, "saved selections cleared", h.app.Status())

	list, err = h.repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
	require.Equal(t, 1, h.app.Tabs().Controller().SelectedIndex(), "selection itself is untouched")
}

func TestAppEscapeClosesDialog(t *testing.T) {
	h := newHarness(t)
	h.send(runes("R"))
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 0, h.app.Tabs().Controller().SelectedIndex())
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, h.app.reset.IsOpen())
}

func TestAppToggleActivityMovesSelection(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, activityKey, h.app.Tabs().Controller().SelectedKey())

	h.send(tea.KeyMsg{Type: tea.KeyCtrlD})
	ctrl := h.app.Tabs().Controller()
	require.Equal(t, "overview", ctrl.SelectedKey())

	got, err := h.repo.Get(context.Background(), tabs.SetID(SetName))
	require.NoError(t, err)
	require.Equal(t, "overview", got.TabKey)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlD})
	reg, _ := ctrl.Tab(2)
	require.False(t, reg.Disabled)
}

func TestAppSwitchFocusRoutesKeysToPanel(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, h.app.Tabs().Focused())
	require.Equal(t, contentFocusID, h.app.focus.Current())

	h.send(runes("+"))
	h.send(runes("+"))
	require.Equal(t, 1, h.app.Tabs().Controller().SelectedIndex())
	require.Contains(t, h.app.Tabs().Content("counter").View(), "count: 2")

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, h.app.Tabs().Focused())
}

func TestAppView(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	out := ansi.Strip(h.app.View())
	require.Contains(t, out, "Overview")
	require.Contains(t, out, "Counter")
	require.Contains(t, out, "type a label")

	h.send(runes("R"))
	out = ansi.Strip(h.app.View())
	require.Contains(t, out, "Reset saved selections?")
}
