package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Theme is the middle layer of style resolution.
type Theme struct {
	Palette Palette `yaml:"palette" toml:"palette"`
	// Schemes maps a color scheme name to its accent color.
	Schemes map[string]string `yaml:"schemes" toml:"schemes"`
	// Scheme is the color scheme used when a component does not name one.
	Scheme string `yaml:"scheme" toml:"scheme"`
}

func Default() Theme {
	return Theme{Palette: defaultPalette(), Schemes: defaultSchemes(), Scheme: "blue"}
}

// LoadFile reads a YAML or TOML theme file on top of Default. Keys missing
// from the file keep their default values.
func LoadFile(path string) (Theme, error) {
	th := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &th); err != nil {
			return Theme{}, fmt.Errorf("parse theme %s: %w", filepath.Base(path), err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &th); err != nil {
			return Theme{}, fmt.Errorf("parse theme %s: %w", filepath.Base(path), err)
		}
	default:
		return Theme{}, fmt.Errorf("theme %s: unsupported extension %q", filepath.Base(path), filepath.Ext(path))
	}
	if th.Schemes == nil {
		th.Schemes = defaultSchemes()
	}
	return th, nil
}

// Accent returns the accent color for scheme, falling back to the theme's
// default scheme and then to the focus color.
func (t Theme) Accent(scheme string) string {
	if c, ok := t.Schemes[strings.ToLower(strings.TrimSpace(scheme))]; ok && c != "" {
		return c
	}
	if c, ok := t.Schemes[t.Scheme]; ok && c != "" {
		return c
	}
	return t.Palette.Focus
}
