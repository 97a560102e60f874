// Package rendering merges a career profile and theme palette into an HTML template.
package rendering

import "fmt"

// TemplateError represents a template that is missing expected structure.
// Marker names the placeholder that could not be found, when applicable.
type TemplateError struct {
	Marker  string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// IOError represents a failure writing the rendered output to disk.
type IOError struct {
	Path    string
	Message string
	Cause   error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("io error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("io error: %s: %s", e.Path, e.Message)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
