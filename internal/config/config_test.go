package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tabkit/tabs"
	"github.com/jask/tabkit/theme"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TABKIT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "horizontal", cfg.Tabs.Orientation)
	require.True(t, cfg.Tabs.Lazy)
	require.Equal(t, "unmount", cfg.Tabs.LazyBehavior)
	require.Equal(t, "info", cfg.Log.Level)
	require.Contains(t, cfg.Database.Path, "tabkit.db")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("TABKIT_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/x.db"},
		Tabs: TabsConfig{
			Orientation:  "vertical",
			Manual:       true,
			Lazy:         true,
			LazyBehavior: "keepMounted",
			Variant:      "enclosed",
			Size:         "lg",
			ColorScheme:  "green",
			Fitted:       true,
			Align:        "center",
		},
		Log: LogConfig{Level: "debug", File: "/tmp/x.log"},
	}
	require.NoError(t, Save(want))
	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("TABKIT_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv("TABKIT_TABS_COLOR_SCHEME", "red")
	t.Setenv("TABKIT_DATABASE_PATH", "/env/db.sqlite")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "red", cfg.Tabs.ColorScheme)
	require.Equal(t, "/env/db.sqlite", cfg.Database.Path)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tabs\nmanual = "), 0o644))
	t.Setenv("TABKIT_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestTabsOptionsAndProps(t *testing.T) {
	tc := TabsConfig{Orientation: "Vertical", LazyBehavior: "keep-mounted", Lazy: true, Manual: true, Variant: "solid-rounded", Size: "sm", Align: "end"}
	opts, err := tc.Options()
	require.NoError(t, err)
	require.Equal(t, tabs.Config{Orientation: tabs.Vertical, Manual: true, Lazy: true, LazyBehavior: tabs.LazyKeepMounted}, opts)

	props, err := tc.Props()
	require.NoError(t, err)
	require.Equal(t, theme.VariantSolidRounded, props.Variant)
	require.Equal(t, theme.SizeSm, props.Size)
	require.Equal(t, theme.AlignEnd, props.Align)

	_, err = TabsConfig{Orientation: "diagonal"}.Options()
	require.ErrorContains(t, err, "tabs.orientation")
	_, err = TabsConfig{Variant: "fancy"}.Props()
	require.ErrorContains(t, err, "tabs.variant")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)
	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestLoadThemeDefault(t *testing.T) {
	th, err := ThemeConfig{}.LoadTheme()
	require.NoError(t, err)
	require.Equal(t, theme.Default().Scheme, th.Scheme)

	_, err = ThemeConfig{File: filepath.Join(t.TempDir(), "theme.json")}.LoadTheme()
	require.Error(t, err)
}
