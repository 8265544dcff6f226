package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Variant string

const (
	VariantLine         Variant = "line"
	VariantEnclosed     Variant = "enclosed"
	VariantSoftRounded  Variant = "soft-rounded"
	VariantSolidRounded Variant = "solid-rounded"
	VariantUnstyled     Variant = "unstyled"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return VariantLine, nil
	case VariantLine, VariantEnclosed, VariantSoftRounded, VariantSolidRounded, VariantUnstyled:
		return v, nil
	}
	return "", fmt.Errorf("unknown tabs variant %q", s)
}

type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

func ParseSize(s string) (Size, error) {
	switch v := Size(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return SizeMd, nil
	case SizeSm, SizeMd, SizeLg:
		return v, nil
	}
	return "", fmt.Errorf("unknown size %q", s)
}

type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

func ParseAlign(s string) (Align, error) {
	switch v := Align(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return AlignStart, nil
	case AlignStart, AlignCenter, AlignEnd:
		return v, nil
	}
	return "", fmt.Errorf("unknown alignment %q", s)
}

// Position maps the alignment onto a lipgloss position.
func (a Align) Position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	}
	return lipgloss.Left
}

type TabsProps struct {
	Variant     Variant
	Size        Size
	ColorScheme string
	// Fitted stretches tabs across the full width of the list.
	Fitted bool
	Align  Align
}

// TabsStyles is the resolved multi-part style config of a tab set.
type TabsStyles struct {
	TabList     lipgloss.Style
	Tab         lipgloss.Style
	SelectedTab lipgloss.Style
	DisabledTab lipgloss.Style
	TabPanel    lipgloss.Style
	Indicator   lipgloss.Style
	Track       lipgloss.Style
	// Focus is layered over whichever tab style applies to the focused tab.
	Focus Override

	IndicatorRune string
	TrackRune     string
	Fitted        bool
	Align         Align
}

type TabsOverrides struct {
	TabList     Override
	Tab         Override
	SelectedTab Override
	DisabledTab Override
	TabPanel    Override
	Indicator   Override
}

// Tabs resolves the tab set styles for props, applying o last.
func (t Theme) Tabs(p TabsProps, o TabsOverrides) TabsStyles {
	if p.Variant == "" {
		p.Variant = VariantLine
	}
	if p.Align == "" {
		p.Align = AlignStart
	}
	s := baseTabs(p.Size)
	s.Fitted = p.Fitted
	s.Align = p.Align

	s.Tab = o.Tab.Apply(s.Tab)
	s.TabList = o.TabList.Apply(s.TabList)
	s.TabPanel = o.TabPanel.Apply(s.TabPanel)
	t.applyTabsVariant(&s, p)

	s.SelectedTab = o.SelectedTab.Apply(s.SelectedTab)
	s.DisabledTab = o.DisabledTab.Apply(s.DisabledTab)
	s.Indicator = o.Indicator.Apply(s.Indicator)
	return s
}

func baseTabs(size Size) TabsStyles {
	pad := []int{0, 2}
	switch size {
	case SizeSm:
		pad = []int{0, 1}
	case SizeLg:
		pad = []int{1, 3}
	}
	return TabsStyles{
		TabList:  lipgloss.NewStyle(),
		Tab:      lipgloss.NewStyle().Padding(pad...),
		TabPanel: lipgloss.NewStyle().Padding(1, pad[1]),
		Focus:    Override{Underline: Bool(true)},
	}
}

func (t Theme) applyTabsVariant(s *TabsStyles, p TabsProps) {
	accent := color(t.Accent(p.ColorScheme))
	muted := color(t.Palette.Muted)
	text := color(t.Palette.Text)
	border := color(t.Palette.Border)

	s.Tab = s.Tab.Foreground(muted)
	s.DisabledTab = s.Tab.Faint(true)
	s.Indicator = lipgloss.NewStyle().Foreground(accent)
	s.Track = lipgloss.NewStyle().Foreground(border)

	switch p.Variant {
	case VariantEnclosed:
		s.Tab = s.Tab.Border(lipgloss.RoundedBorder(), true, true, false, true).BorderForeground(border)
		s.DisabledTab = s.Tab.Faint(true)
		s.SelectedTab = s.Tab.BorderForeground(accent).Foreground(text).Bold(true)
		s.TrackRune = "─"
	case VariantSoftRounded:
		s.SelectedTab = s.Tab.Background(color(t.Palette.Surface)).Foreground(accent).Bold(true)
	case VariantSolidRounded:
		s.SelectedTab = s.Tab.Background(accent).Foreground(color(t.Palette.Inverse)).Bold(true)
	case VariantUnstyled:
		*s = TabsStyles{
			TabList:     lipgloss.NewStyle(),
			Tab:         lipgloss.NewStyle(),
			SelectedTab: lipgloss.NewStyle(),
			DisabledTab: lipgloss.NewStyle(),
			TabPanel:    lipgloss.NewStyle(),
			Indicator:   lipgloss.NewStyle(),
			Track:       lipgloss.NewStyle(),
			Fitted:      s.Fitted,
			Align:       s.Align,
		}
	default:
		s.SelectedTab = s.Tab.Foreground(accent).Bold(true)
		s.IndicatorRune = "━"
		s.TrackRune = "─"
	}
}
