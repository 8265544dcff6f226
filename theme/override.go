package theme

import "github.com/charmbracelet/lipgloss"

// Override is the instance layer for a single style slot. Zero fields leave
// the resolved style untouched.
type Override struct {
	Foreground       string
	Background       string
	BorderForeground string
	Bold             *bool
	Underline        *bool
	Italic           *bool
	Faint            *bool
	// Padding follows CSS shorthand order, as lipgloss.Style.Padding does.
	Padding []int
}

func (o Override) Apply(s lipgloss.Style) lipgloss.Style {
	if o.Foreground != "" {
		s = s.Foreground(lipgloss.Color(o.Foreground))
	}
	if o.Background != "" {
		s = s.Background(lipgloss.Color(o.Background))
	}
	if o.BorderForeground != "" {
		s = s.BorderForeground(lipgloss.Color(o.BorderForeground))
	}
	if o.Bold != nil {
		s = s.Bold(*o.Bold)
	}
	if o.Underline != nil {
		s = s.Underline(*o.Underline)
	}
	if o.Italic != nil {
		s = s.Italic(*o.Italic)
	}
	if o.Faint != nil {
		s = s.Faint(*o.Faint)
	}
	if len(o.Padding) > 0 && len(o.Padding) <= 4 {
		s = s.Padding(o.Padding...)
	}
	return s
}

// Bool is a convenience for the pointer fields of Override.
func Bool(v bool) *bool { return &v }
