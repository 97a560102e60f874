// Package rendering merges a career profile and theme palette into an HTML template.
package rendering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// extraThemeCSS generates CSS custom-property declarations for the
// decorative theme groups. Scrollbar, decorative-light, and logo-gradient
// variables land in :root; decorative-dark variables land in .dark.
// Keys are emitted sorted so output is deterministic.
func extraThemeCSS(palette *types.ThemePalette) string {
	rootVars := []string{}
	rootVars = append(rootVars, prefixedVars("scrollbar", palette.Scrollbar)...)
	rootVars = append(rootVars, prefixedVars("decorative", palette.DecorativeLight)...)
	rootVars = append(rootVars, prefixedVars("logo", palette.LogoGradients)...)
	darkVars := prefixedVars("decorative", palette.DecorativeDark)

	blocks := []string{}
	if len(rootVars) > 0 {
		blocks = append(blocks, ":root {\n"+strings.Join(rootVars, "\n")+"\n}")
	}
	if len(darkVars) > 0 {
		blocks = append(blocks, ".dark {\n"+strings.Join(darkVars, "\n")+"\n}")
	}
	return strings.Join(blocks, "\n\n")
}

// prefixedVars formats a decorative group as custom-property declarations,
// e.g. ("scrollbar", {"thumb": "#313847"}) -> "  --scrollbar-thumb: #313847;".
func prefixedVars(prefix string, group map[string]string) []string {
	if len(group) == 0 {
		return nil
	}

	keys := make([]string, 0, len(group))
	for key := range group {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	vars := make([]string, 0, len(keys))
	for _, key := range keys {
		vars = append(vars, fmt.Sprintf("  --%s-%s: %s;", prefix, key, group[key]))
	}
	return vars
}
