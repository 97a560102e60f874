package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-builder/internal/types"
)

func TestExtraThemeCSS_Empty(t *testing.T) {
	assert.Equal(t, "", extraThemeCSS(&types.ThemePalette{}))
}

func TestExtraThemeCSS_RootGroups(t *testing.T) {
	palette := &types.ThemePalette{
		Scrollbar: map[string]string{
			"thumb-hover": "#3f4759",
			"thumb":       "#313847",
		},
		LogoGradients: map[string]string{
			"start": "#111111",
		},
	}

	css := extraThemeCSS(palette)
	expected := ":root {\n" +
		"  --scrollbar-thumb: #313847;\n" +
		"  --scrollbar-thumb-hover: #3f4759;\n" +
		"  --logo-start: #111111;\n" +
		"}"
	assert.Equal(t, expected, css)
}

func TestExtraThemeCSS_DarkDecorativeGoesToDarkBlock(t *testing.T) {
	palette := &types.ThemePalette{
		DecorativeLight: map[string]string{"glow": "#ffeecc"},
		DecorativeDark:  map[string]string{"glow": "#223344"},
	}

	css := extraThemeCSS(palette)
	assert.Contains(t, css, ":root {\n  --decorative-glow: #ffeecc;\n}")
	assert.Contains(t, css, ".dark {\n  --decorative-glow: #223344;\n}")
}
