// Package config provides loading of the career-data and theme configuration files.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

// LoadProfile reads a career-data YAML file and decodes it into a CareerProfile.
// A missing file, unparseable YAML, or a schema/presence violation is a ConfigError.
func LoadProfile(path string) (*types.CareerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{Path: path, Message: "career data file not found", Cause: err}
		}
		return nil, &ConfigError{Path: path, Message: "failed to read career data file", Cause: err}
	}

	var profile types.CareerProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, &ConfigError{Path: path, Message: "failed to parse career data YAML", Cause: err}
	}

	if err := schemas.ValidateProfileYAML(data); err != nil {
		return nil, &ConfigError{Path: path, Message: "career data does not match schema", Cause: err}
	}

	if err := profile.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Message: "career data failed presence checks", Cause: err}
	}

	applyEnvOverrides(&profile)

	return &profile, nil
}

// applyEnvOverrides fills secret-bearing basics fields from the environment
// when the YAML leaves them empty, so access keys can stay out of the
// committed career-data file. A .env file is loaded by main before this runs.
func applyEnvOverrides(profile *types.CareerProfile) {
	if profile.Basics.FormAPIKey == "" {
		profile.Basics.FormAPIKey = os.Getenv("FORM_API_KEY")
	}
	if profile.Basics.AnalyticsID == "" {
		profile.Basics.AnalyticsID = os.Getenv("ANALYTICS_ID")
	}
}
