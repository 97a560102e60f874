package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-builder/internal/types"
)

func TestPrinter_Step(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Step("Reading career data from %s...", "cv.yaml")

	assert.Equal(t, "  Reading career data from cv.yaml...\n", buf.String())
}

func TestPrinter_Done(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Done("Build complete! Open %s in your browser to view your CV.", "index.html")

	assert.Contains(t, buf.String(), "✓ Build complete!")
}

func TestPrinter_PrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.CareerProfile{
		Basics: types.Basics{Name: "Ada Lovelace", Label: "Mathematician"},
		Work:   []types.Entry{{Name: "Analytical Engine"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Career Profile")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Work:           1")
}

func TestPrinter_PrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrinter_PrintPalette(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPalette(&types.ThemePalette{
		Light: map[string]string{"primary": "#2563eb"},
		Dark:  map[string]string{"primary": "#3b82f6"},
	})

	out := buf.String()
	assert.Contains(t, out, "Theme Palette")
	assert.Contains(t, out, "primary: #2563eb")
}
