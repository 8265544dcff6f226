package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabkit/alertdialog"
	"github.com/jask/tabkit/focus"
	"github.com/jask/tabkit/internal/config"
	"github.com/jask/tabkit/internal/database/repository"
	"github.com/jask/tabkit/internal/service"
	"github.com/jask/tabkit/tabs"
	"github.com/jask/tabkit/theme"
)

// SetName names the demo tab set. Its selection is persisted under this name.
const SetName = "demo"

const (
	contentFocusID = "demo--content"
	activityKey    = "activity"
)

// App ties together views.
type App struct {
	ctx      context.Context
	services Services
	log      *slog.Logger

	focus *focus.Manager
	zone  *zone.Manager
	tabs  *tabs.Model
	reset *alertdialog.Dialog
	help  help.Model
	keys  appKeys

	changed  bool
	activity []string
	status   string
	width    int
	height   int
}

type Services struct {
	Selections  *service.SelectionService
	Maintenance *service.MaintenanceService
}

type statusMsg string

type errMsg struct{ error }

type savedMsg struct{ sel repository.Selection }

// New builds the demo. The stored selection is restored before the first
// frame so lazy panels mount on the right tab.
func New(ctx context.Context, cfg config.Config, services Services, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	th, err := cfg.Theme.LoadTheme()
	if err != nil {
		return nil, err
	}
	props, err := cfg.Tabs.Props()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Tabs.Options()
	if err != nil {
		return nil, err
	}

	a := &App{
		ctx:      ctx,
		services: services,
		log:      log,
		focus:    focus.NewManager(),
		zone:     zone.New(),
		help:     help.New(),
		keys:     defaultAppKeys(),
	}
	opts.Name = SetName
	opts.Focuser = a.focus
	opts.Logger = log
	opts.OnChange = func(int) { a.changed = true }

	a.tabs = tabs.NewModel(tabs.Options{
		Config: opts,
		Panels: a.panels(cfg),
		Styles: th.Tabs(props, theme.TabsOverrides{}),
		Zone:   a.zone,
	})
	a.reset = alertdialog.NewConfirm(alertdialog.ConfirmConfig{
		ID:           "reset",
		Title:        "Reset saved selections?",
		Body:         "Every remembered tab selection will be forgotten.",
		ConfirmLabel: "Reset",
		OnConfirm:    a.resetSelections,
		Focus:        a.focus,
		Styles:       th.Modal(theme.ModalProps{ColorScheme: "red", Size: props.Size}, theme.ModalOverrides{}),
	})

	if services.Selections != nil {
		ok, err := services.Selections.Restore(ctx, a.tabs.Controller())
		switch {
		case err != nil:
			a.status = "error: " + err.Error()
		case ok:
			a.record("restored %q", a.tabs.Controller().SelectedKey())
		}
	}
	a.tabs.Focus()
	a.changed = false
	return a, nil
}

func (a *App) panels(cfg config.Config) []tabs.Panel {
	overview := []string{
		"Arrow keys move between tabs; type a label to jump to it.",
		fmt.Sprintf("orientation: %s  manual: %v", cfg.Tabs.Orientation, cfg.Tabs.Manual),
		fmt.Sprintf("lazy: %v (%s)  variant: %s", cfg.Tabs.Lazy, cfg.Tabs.LazyBehavior, cfg.Tabs.Variant),
	}
	return []tabs.Panel{
		{Key: "overview", Label: "Overview", New: func() tea.Model { return overviewPanel{lines: overview} }},
		{Key: "counter", Label: "Counter", New: func() tea.Model { return counterPanel{} }},
		{Key: activityKey, Label: "Activity", New: func() tea.Model { return activityPanel{log: &a.activity} }},
	}
}

// Tabs exposes the tab set for tests.
func (a *App) Tabs() *tabs.Model { return a.tabs }

func (a *App) Status() string { return a.status }

func (a *App) Init() tea.Cmd {
	return a.tabs.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.reset.Update(msg); handled {
		return a, cmd
	}
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.tabs.SetWidth(m.Width)
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(m, a.keys.Reset):
			a.reset.Open()
			return a, nil
		case key.Matches(m, a.keys.SwitchFocus):
			a.switchFocus()
			return a, nil
		case key.Matches(m, a.keys.Toggle):
			return a, a.toggleActivity()
		}
	case statusMsg:
		a.status = string(m)
		return a, nil
	case savedMsg:
		a.log.Debug("selection saved", "set", m.sel.SetName, "tab", m.sel.TabKey)
		return a, nil
	case errMsg:
		a.status = "error: " + m.Error()
		a.log.Error("demo", "err", m.error)
		return a, nil
	}
	cmd := a.tabs.Update(msg)
	return a, tea.Batch(cmd, a.persist())
}

// switchFocus moves focus between the tab list and the selected panel.
func (a *App) switchFocus() {
	if a.tabs.Focused() {
		a.tabs.Blur()
		a.focus.Focus(contentFocusID)
		return
	}
	a.tabs.Focus()
}

func (a *App) toggleActivity() tea.Cmd {
	ctrl := a.tabs.Controller()
	reg, ok := ctrl.Tab(ctrl.IndexOf(activityKey))
	if !ok {
		return nil
	}
	cmd := a.tabs.SetDisabled(activityKey, !reg.Disabled)
	if reg.Disabled {
		a.record("activity tab enabled")
	} else {
		a.record("activity tab disabled")
	}
	return tea.Batch(cmd, a.persist())
}

// persist stores the selection when the last update changed it.
func (a *App) persist() tea.Cmd {
	if !a.changed {
		return nil
	}
	a.changed = false
	sel, ok := service.Snapshot(a.tabs.Controller(), SetName)
	if !ok {
		return nil
	}
	a.record("selected %q", sel.TabKey)
	a.log.Info("tab selected", "set", SetName, "tab", sel.TabKey, "index", sel.TabIndex)
	if a.services.Selections == nil {
		return nil
	}
	svc, ctx := a.services.Selections, a.ctx
	return func() tea.Msg {
		if err := svc.Store(ctx, sel); err != nil {
			return errMsg{err}
		}
		return savedMsg{sel: sel}
	}
}

func (a *App) resetSelections() tea.Cmd {
	svc, ctx, log := a.services.Maintenance, a.ctx, a.log
	a.record("reset requested")
	return func() tea.Msg {
		if svc == nil {
			return errMsg{fmt.Errorf("maintenance not configured")}
		}
		if err := svc.Reset(ctx); err != nil {
			return errMsg{err}
		}
		log.Info("selections reset")
		return statusMsg("saved selections cleared")
	}
}

func (a *App) record(format string, args ...any) {
	a.activity = append(a.activity, fmt.Sprintf(format, args...))
}

func (a *App) View() string {
	body := a.tabs.View()
	footer := a.help.View(helpKeys{tabs: a.tabs.KeyMap(), app: a.keys})
	if a.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, a.status, footer)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
	if a.width > 0 && a.height > 0 {
		view = lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, view)
		view = a.reset.Overlay(view, a.width, a.height)
	} else if a.reset.IsOpen() {
		view = lipgloss.JoinVertical(lipgloss.Left, view, a.reset.View())
	}
	return a.zone.Scan(view)
}
