// Package rendering merges a career profile and theme palette into an HTML template.
package rendering

import (
	"os"
	"path/filepath"
)

// WriteOutput writes a fully rendered document to the output path,
// overwriting any previous build. This is the only write the build performs.
func WriteOutput(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &IOError{Path: path, Message: "failed to create output directory", Cause: err}
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &IOError{Path: path, Message: "failed to write output file", Cause: err}
	}
	return nil
}
