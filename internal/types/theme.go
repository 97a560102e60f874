// Package types provides type definitions for the structured career data consumed by the cv-builder.
package types

// ThemePalette is the loaded light/dark color-role mapping, plus the
// optional decorative groups a theme file may carry. Decorative groups
// have no defaults and pass through as-is.
type ThemePalette struct {
	Light           map[string]string `yaml:"light"`
	Dark            map[string]string `yaml:"dark"`
	Scrollbar       map[string]string `yaml:"scrollbar"`
	DecorativeLight map[string]string `yaml:"decorative-light"`
	DecorativeDark  map[string]string `yaml:"decorative-dark"`
	LogoGradients   map[string]string `yaml:"logo-gradients"`
}
