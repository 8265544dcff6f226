package theme

import "github.com/charmbracelet/lipgloss"

type ModalProps struct {
	ColorScheme string
	Size        Size
}

type ModalStyles struct {
	Content       lipgloss.Style
	Header        lipgloss.Style
	Body          lipgloss.Style
	Footer        lipgloss.Style
	Button        lipgloss.Style
	FocusedButton lipgloss.Style
	DangerButton  lipgloss.Style
}

type ModalOverrides struct {
	Content       Override
	Header        Override
	Body          Override
	Footer        Override
	Button        Override
	FocusedButton Override
	DangerButton  Override
}

// Modal resolves dialog styles. The danger slot is used by destructive
// actions regardless of the color scheme.
func (t Theme) Modal(p ModalProps, o ModalOverrides) ModalStyles {
	accent := color(t.Accent(p.ColorScheme))
	pad := []int{1, 2}
	if p.Size == SizeSm {
		pad = []int{0, 1}
	}
	button := lipgloss.NewStyle().Padding(0, 1).Foreground(color(t.Palette.Text)).Background(color(t.Palette.Surface))
	s := ModalStyles{
		Content: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(t.Palette.Border)).
			Padding(pad...),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(color(t.Palette.Text)),
		Body:          lipgloss.NewStyle().Foreground(color(t.Palette.Text)).MarginTop(1),
		Footer:        lipgloss.NewStyle().MarginTop(1),
		Button:        button,
		FocusedButton: button.Background(accent).Foreground(color(t.Palette.Inverse)).Bold(true),
		DangerButton:  button.Foreground(color(t.Palette.Danger)),
	}
	s.Content = o.Content.Apply(s.Content)
	s.Header = o.Header.Apply(s.Header)
	s.Body = o.Body.Apply(s.Body)
	s.Footer = o.Footer.Apply(s.Footer)
	s.Button = o.Button.Apply(s.Button)
	s.FocusedButton = o.FocusedButton.Apply(s.FocusedButton)
	s.DangerButton = o.DangerButton.Apply(s.DangerButton)
	return s
}
