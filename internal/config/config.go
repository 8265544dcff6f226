package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/tabkit/tabs"
	"github.com/jask/tabkit/theme"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Tabs     TabsConfig
	Theme    ThemeConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// TabsConfig holds the demo tab set behaviour and look.
type TabsConfig struct {
	Orientation  string
	Manual       bool
	Lazy         bool
	LazyBehavior string `mapstructure:"lazy_behavior"`
	Variant      string
	Size         string
	ColorScheme  string `mapstructure:"color_scheme"`
	Fitted       bool
	Align        string
}

// ThemeConfig points at an optional YAML or TOML theme file.
type ThemeConfig struct {
	File string
}

type LogConfig struct {
	Level string
	File  string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "tabkit")
}

// Path returns the config file location. TABKIT_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("TABKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tabkit", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TABKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "tabkit.db"))
	v.SetDefault("tabs.orientation", "horizontal")
	v.SetDefault("tabs.manual", false)
	v.SetDefault("tabs.lazy", true)
	v.SetDefault("tabs.lazy_behavior", "unmount")
	v.SetDefault("tabs.variant", "line")
	v.SetDefault("tabs.size", "md")
	v.SetDefault("tabs.color_scheme", "blue")
	v.SetDefault("tabs.fitted", false)
	v.SetDefault("tabs.align", "start")
	v.SetDefault("theme.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir(), "tabkit.log"))

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("TABKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("tabs.orientation", cfg.Tabs.Orientation)
	v.Set("tabs.manual", cfg.Tabs.Manual)
	v.Set("tabs.lazy", cfg.Tabs.Lazy)
	v.Set("tabs.lazy_behavior", cfg.Tabs.LazyBehavior)
	v.Set("tabs.variant", cfg.Tabs.Variant)
	v.Set("tabs.size", cfg.Tabs.Size)
	v.Set("tabs.color_scheme", cfg.Tabs.ColorScheme)
	v.Set("tabs.fitted", cfg.Tabs.Fitted)
	v.Set("tabs.align", cfg.Tabs.Align)
	v.Set("theme.file", cfg.Theme.File)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ParseOrientation accepts "horizontal" and "vertical"; empty means horizontal.
func ParseOrientation(s string) (tabs.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return tabs.Horizontal, nil
	case "vertical":
		return tabs.Vertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

func ParseLazyBehavior(s string) (tabs.LazyBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unmount":
		return tabs.LazyUnmount, nil
	case "keepmounted", "keep_mounted", "keep-mounted":
		return tabs.LazyKeepMounted, nil
	}
	return 0, fmt.Errorf("unknown lazy behavior %q", s)
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Options turns the tabs section into controller settings.
func (t TabsConfig) Options() (tabs.Config, error) {
	o, err := ParseOrientation(t.Orientation)
	if err != nil {
		return tabs.Config{}, fmt.Errorf("tabs.orientation: %w", err)
	}
	lb, err := ParseLazyBehavior(t.LazyBehavior)
	if err != nil {
		return tabs.Config{}, fmt.Errorf("tabs.lazy_behavior: %w", err)
	}
	return tabs.Config{Orientation: o, Manual: t.Manual, Lazy: t.Lazy, LazyBehavior: lb}, nil
}

// Props turns the tabs section into theme props.
func (t TabsConfig) Props() (theme.TabsProps, error) {
	variant, err := theme.ParseVariant(t.Variant)
	if err != nil {
		return theme.TabsProps{}, fmt.Errorf("tabs.variant: %w", err)
	}
	size, err := theme.ParseSize(t.Size)
	if err != nil {
		return theme.TabsProps{}, fmt.Errorf("tabs.size: %w", err)
	}
	align, err := theme.ParseAlign(t.Align)
	if err != nil {
		return theme.TabsProps{}, fmt.Errorf("tabs.align: %w", err)
	}
	return theme.TabsProps{Variant: variant, Size: size, ColorScheme: t.ColorScheme, Fitted: t.Fitted, Align: align}, nil
}

// LoadTheme returns the default theme, or the file named in the theme section.
func (t ThemeConfig) LoadTheme() (theme.Theme, error) {
	if strings.TrimSpace(t.File) == "" {
		return theme.Default(), nil
	}
	th, err := theme.LoadFile(t.File)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("theme.file: %w", err)
	}
	return th, nil
}
