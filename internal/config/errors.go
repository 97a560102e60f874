// Package config provides loading of the career-data and theme configuration files.
package config

import "fmt"

// ConfigError represents a missing or malformed required input file.
type ConfigError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s: %s", e.Path, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
