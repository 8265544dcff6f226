package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha, true-color hex values.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     = "#f5c2e7"
	colorMauve    = "#cba6f7"
	colorRed      = "#f38ba8"
	colorPeach    = "#fab387"
	colorYellow   = "#f9e2af"
	colorGreen    = "#a6e3a1"
	colorTeal     = "#94e2d5"
	colorSapphire = "#74c7ec"
	colorBlue     = "#89b4fa"
	colorLavender = "#b4befe"

	colorText     = "#cdd6f4"
	colorOverlay0 = "#6c7086"
	colorSurface1 = "#45475a"
	colorSurface0 = "#313244"
	colorMantle   = "#181825"
	colorCrust    = "#11111b"
)

// Palette holds the semantic colors every component draws with. Values are
// anything lipgloss.Color accepts (hex or ANSI index).
type Palette struct {
	Text     string `yaml:"text" toml:"text"`
	Muted    string `yaml:"muted" toml:"muted"`
	Surface  string `yaml:"surface" toml:"surface"`
	Border   string `yaml:"border" toml:"border"`
	Backdrop string `yaml:"backdrop" toml:"backdrop"`
	Inverse  string `yaml:"inverse" toml:"inverse"`
	Focus    string `yaml:"focus" toml:"focus"`
	Danger   string `yaml:"danger" toml:"danger"`
}

func defaultPalette() Palette {
	return Palette{
		Text:     colorText,
		Muted:    colorOverlay0,
		Surface:  colorSurface0,
		Border:   colorSurface1,
		Backdrop: colorMantle,
		Inverse:  colorCrust,
		Focus:    colorLavender,
		Danger:   colorRed,
	}
}

func defaultSchemes() map[string]string {
	return map[string]string{
		"blue":   colorBlue,
		"cyan":   colorSapphire,
		"green":  colorGreen,
		"orange": colorPeach,
		"pink":   colorPink,
		"purple": colorMauve,
		"red":    colorRed,
		"teal":   colorTeal,
		"yellow": colorYellow,
	}
}

func color(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}
