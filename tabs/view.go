package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabkit/theme"
)

// Tab renders one tab button.
type Tab struct {
	Label   string
	Attrs   TabAttrs
	Focused bool
	Width   int
	Styles  theme.TabsStyles
}

func (t Tab) View() string {
	style := t.Styles.Tab
	switch {
	case t.Attrs.Disabled:
		style = t.Styles.DisabledTab
	case t.Attrs.Selected:
		style = t.Styles.SelectedTab
	}
	if t.Focused {
		style = t.Styles.Focus.Apply(style)
	}
	if t.Width > 0 {
		style = style.Width(t.Width - style.GetHorizontalBorderSize()).Align(lipgloss.Center)
	}
	return style.Render(t.Label)
}

// TabList renders every tab of Ctrl and reports their geometry back to it.
// Zone, when set, marks each tab for mouse hit-testing.
type TabList struct {
	Ctrl    *Controller
	Styles  theme.TabsStyles
	Zone    *zone.Manager
	Width   int
	Focused bool
}

func (l TabList) View() string {
	c := l.Ctrl
	n := c.Len()
	if n == 0 {
		return ""
	}
	cells := make([]string, n)
	widths := fittedWidths(l.Width, n, l.Styles.Fitted && c.Orientation() == Horizontal)
	for i, reg := range c.Tabs() {
		cells[i] = Tab{
			Label:   reg.Label,
			Attrs:   c.TabAttrs(i),
			Focused: l.Focused && i == c.FocusedIndex(),
			Width:   widths[i],
			Styles:  l.Styles,
		}.View()
	}

	// Offsets of the list frame, so rects line up with the rendered output.
	ls := l.Styles.TabList
	fx := ls.GetMarginLeft() + ls.GetBorderLeftSize() + ls.GetPaddingLeft()
	fy := ls.GetMarginTop() + ls.GetBorderTopSize() + ls.GetPaddingTop()

	var row string
	if c.Orientation() == Vertical {
		y := fy
		for i, cell := range cells {
			h := lipgloss.Height(cell)
			c.Measure(i, Rect{X: fx, Y: y, Width: lipgloss.Width(cell), Height: h})
			y += h
		}
		row = lipgloss.JoinVertical(lipgloss.Left, cells...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
		x := alignOffset(l.Width, lipgloss.Width(row), l.Styles.Align)
		if x > 0 {
			row = indent(row, x)
		}
		for i, cell := range cells {
			w := lipgloss.Width(cell)
			c.Measure(i, Rect{X: fx + x, Y: fy, Width: w, Height: lipgloss.Height(cell)})
			x += w
		}
	}
	if l.Zone != nil {
		// Marks are zero width, so they go on after measuring.
		row = l.mark(cells)
	}
	return l.Styles.TabList.Render(row)
}

// mark re-renders the list with each tab wrapped in its zone.
func (l TabList) mark(cells []string) string {
	c := l.Ctrl
	marked := make([]string, len(cells))
	for i, cell := range cells {
		reg, _ := c.Tab(i)
		marked[i] = l.Zone.Mark(reg.ID, cell)
	}
	if c.Orientation() == Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, marked...)
	}
	out := lipgloss.JoinHorizontal(lipgloss.Bottom, marked...)
	if x := alignOffset(l.Width, lipgloss.Width(out), l.Styles.Align); x > 0 {
		out = indent(out, x)
	}
	return out
}

// TabIndicator draws a bar under (or beside, when vertical) the selected tab
// using the geometry the tab list measured.
type TabIndicator struct {
	Ctrl   *Controller
	Styles theme.TabsStyles
	// Length is the width (horizontal) or height (vertical) of the track.
	Length int
}

func (ind TabIndicator) View() string {
	if ind.Styles.IndicatorRune == "" && ind.Styles.TrackRune == "" {
		return ""
	}
	rect, ok := ind.Ctrl.IndicatorRect()
	track := ind.Styles.TrackRune
	if track == "" {
		track = " "
	}
	bar := ind.Styles.IndicatorRune
	if bar == "" {
		bar = track
	}
	if ind.Ctrl.Orientation() == Vertical {
		cells := make([]string, ind.Length)
		for y := range cells {
			if ok && y >= rect.Y && y < rect.Y+rect.Height {
				cells[y] = ind.Styles.Indicator.Render(verticalRune(bar))
			} else {
				cells[y] = ind.Styles.Track.Render(verticalRune(track))
			}
		}
		return strings.Join(cells, "\n")
	}
	length := ind.Length
	if ok && rect.X+rect.Width > length {
		length = rect.X + rect.Width
	}
	if !ok {
		return ind.Styles.Track.Render(strings.Repeat(track, length))
	}
	return ind.Styles.Track.Render(strings.Repeat(track, rect.X)) +
		ind.Styles.Indicator.Render(strings.Repeat(bar, rect.Width)) +
		ind.Styles.Track.Render(strings.Repeat(track, length-rect.X-rect.Width))
}

// TabPanel renders the content of one panel.
type TabPanel struct {
	Attrs   PanelAttrs
	Content string
	Styles  theme.TabsStyles
}

func (p TabPanel) View() string {
	if p.Attrs.Hidden {
		return ""
	}
	return p.Styles.TabPanel.Render(p.Content)
}

// TabPanels renders the selected panel. Content is looked up by tab index so
// hidden panels never need to render.
type TabPanels struct {
	Ctrl    *Controller
	Styles  theme.TabsStyles
	Content func(index int) string
}

func (ps TabPanels) View() string {
	c := ps.Ctrl
	idx := c.SelectedIndex()
	if !c.PanelVisible(idx) || ps.Content == nil {
		return ""
	}
	return TabPanel{Attrs: c.PanelAttrs(idx), Content: ps.Content(idx), Styles: ps.Styles}.View()
}

func fittedWidths(total, n int, fitted bool) []int {
	out := make([]int, n)
	if !fitted || total <= 0 || n == 0 {
		return out
	}
	for i := range out {
		out[i] = total / n
	}
	out[n-1] += total % n
	return out
}

func alignOffset(total, width int, align theme.Align) int {
	if total <= width {
		return 0
	}
	switch align {
	case theme.AlignCenter:
		return (total - width) / 2
	case theme.AlignEnd:
		return total - width
	}
	return 0
}

func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

func verticalRune(r string) string {
	switch r {
	case "━":
		return "┃"
	case "─":
		return "│"
	}
	return r
}
