// Package theme resolves component style configs.
//
// Styles are resolved in a fixed order: base defaults, then the theme
// (variant, size, color scheme, palette), then per-instance overrides.
//
// Allowed here:
// - palettes, variants, sizes, theme files, typed overrides
//
// Not allowed here:
// - component state or key handling
package theme
