// Package config provides loading of the career-data and theme configuration files.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/cv-builder/internal/types"
)

// Default color values per role and variant. Any role a theme file omits
// resolves to the value listed here.
var (
	defaultLight = map[string]string{
		"primary":              "#2563eb",
		"primary-hover":        "#1d4ed8",
		"text-primary":         "#111827",
		"text-secondary":       "#4b5563",
		"background-primary":   "#ffffff",
		"background-secondary": "#f3f4f6",
		"border":               "#e5e7eb",
		"accent":               "#7c3aed",
	}
	defaultDark = map[string]string{
		"primary":              "#3b82f6",
		"primary-hover":        "#60a5fa",
		"text-primary":         "#f9fafb",
		"text-secondary":       "#9ca3af",
		"background-primary":   "#0f172a",
		"background-secondary": "#1e293b",
		"border":               "#313847",
		"accent":               "#a78bfa",
	}
)

// DefaultPalette returns a fresh copy of the built-in palette used when no
// theme file is present.
func DefaultPalette() *types.ThemePalette {
	return &types.ThemePalette{
		Light: cloneRoles(defaultLight),
		Dark:  cloneRoles(defaultDark),
	}
}

// LoadTheme reads a theme YAML file and merges it over the default palette.
// A missing file is not an error: the default palette is returned and a
// warning is written to warn. A present-but-malformed file is a ConfigError.
func LoadTheme(path string, warn io.Writer) (*types.ThemePalette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(warn, "Note: theme file %s not found, using default palette\n", path)
			return DefaultPalette(), nil
		}
		return nil, &ConfigError{Path: path, Message: "failed to read theme file", Cause: err}
	}

	var loaded types.ThemePalette
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, &ConfigError{Path: path, Message: "failed to parse theme YAML", Cause: err}
	}

	return mergeWithDefaults(&loaded), nil
}

// mergeWithDefaults overlays loaded palette values on the default table so
// the result is fully populated for every documented role. Roles the theme
// file adds beyond the defaults are kept. Decorative groups have no
// defaults and pass through untouched.
func mergeWithDefaults(loaded *types.ThemePalette) *types.ThemePalette {
	merged := DefaultPalette()
	for role, value := range loaded.Light {
		merged.Light[role] = value
	}
	for role, value := range loaded.Dark {
		merged.Dark[role] = value
	}
	merged.Scrollbar = cloneRoles(loaded.Scrollbar)
	merged.DecorativeLight = cloneRoles(loaded.DecorativeLight)
	merged.DecorativeDark = cloneRoles(loaded.DecorativeDark)
	merged.LogoGradients = cloneRoles(loaded.LogoGradients)
	return merged
}

func cloneRoles(roles map[string]string) map[string]string {
	if roles == nil {
		return nil
	}
	clone := make(map[string]string, len(roles))
	for role, value := range roles {
		clone[role] = value
	}
	return clone
}
