// Package rendering merges a career profile and theme palette into an HTML template.
package rendering

import "strings"

// EscapeHTML escapes text for splicing into HTML text or attribute positions.
// Special characters: & < > " '
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
