package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// overviewPanel is static text.
type overviewPanel struct {
	lines []string
}

func (p overviewPanel) Init() tea.Cmd                       { return nil }
func (p overviewPanel) Update(tea.Msg) (tea.Model, tea.Cmd) { return p, nil }
func (p overviewPanel) View() string                        { return strings.Join(p.lines, "\n") }

// counterPanel keeps local state so lazy unmounting is visible: leaving the
// tab resets the count unless panels are kept mounted.
type counterPanel struct {
	count int
}

func (p counterPanel) Init() tea.Cmd { return nil }

func (p counterPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "+", "up":
			p.count++
		case "-", "down":
			p.count--
		}
	}
	return p, nil
}

func (p counterPanel) View() string {
	return fmt.Sprintf("count: %d\n\n+/- to change (focus the panel with tab)", p.count)
}

// activityPanel renders the app's activity log. It reads through a pointer
// so remounts see the full history.
type activityPanel struct {
	log *[]string
}

func (p activityPanel) Init() tea.Cmd                       { return nil }
func (p activityPanel) Update(tea.Msg) (tea.Model, tea.Cmd) { return p, nil }

func (p activityPanel) View() string {
	if p.log == nil || len(*p.log) == 0 {
		return "no activity yet"
	}
	entries := *p.log
	if len(entries) > 8 {
		entries = entries[len(entries)-8:]
	}
	return strings.Join(entries, "\n")
}
