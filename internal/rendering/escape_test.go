package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text", "Ada Lovelace", "Ada Lovelace"},
		{"quotes", `She said "notes"`, "She said &quot;notes&quot;"},
		{"ampersand", "R&D", "R&amp;D"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"apostrophe", "Ada's notes", "Ada&#39;s notes"},
		{"unicode untouched", "Métier naïve café", "Métier naïve café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeHTML(tt.input))
		})
	}
}
