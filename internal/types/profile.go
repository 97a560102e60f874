// Package types provides type definitions for the structured career data consumed by the cv-builder.
package types

import "github.com/go-playground/validator/v10"

// CareerProfile is the complete person record loaded from the career-data file.
// YAML and JSON tags share key names so the JSON block embedded in the rendered
// page mirrors the source file structurally.
type CareerProfile struct {
	Basics         Basics  `yaml:"basics" json:"basics"`
	Work           []Entry `yaml:"work" json:"work"`
	Education      []Entry `yaml:"education" json:"education"`
	Certifications []Entry `yaml:"certifications" json:"certifications"`
	Courses        []Entry `yaml:"courses" json:"courses"`
	Volunteer      []Entry `yaml:"volunteer" json:"volunteer"`
}

// Basics holds the identity fields of a profile.
type Basics struct {
	Name        string    `yaml:"name" json:"name" validate:"required"`
	Label       string    `yaml:"label" json:"label,omitempty"`
	Email       string    `yaml:"email" json:"email,omitempty"`
	Image       string    `yaml:"image" json:"image,omitempty"`
	Intro       Intro     `yaml:"intro" json:"intro"`
	Contact     []Contact `yaml:"contact" json:"contact"`
	FormAPIKey  string    `yaml:"form-api-key" json:"form-api-key,omitempty"`
	AnalyticsID string    `yaml:"analytics-id" json:"analytics-id,omitempty"`
}

// Intro is the free-text summary shown at the top of the page and used
// for the meta description.
type Intro struct {
	Text string `yaml:"text" json:"text,omitempty"`
}

// Contact is a single contact channel. Social marks the entry as relevant
// for SEO/structured-data derivation; the front end only renders entries
// whose Link is non-empty.
type Contact struct {
	Icon    string `yaml:"icon" json:"icon,omitempty"`
	Heading string `yaml:"heading" json:"heading,omitempty"`
	Content string `yaml:"content" json:"content,omitempty"`
	Link    string `yaml:"link" json:"link,omitempty"`
	Type    string `yaml:"type" json:"type,omitempty"`
	Social  bool   `yaml:"social" json:"social"`
}

// Entry is one item in a career collection (work, education, certifications,
// courses, volunteer). Collections preserve source ordering.
type Entry struct {
	Name         string `yaml:"name" json:"name"`
	Logo         string `yaml:"logo" json:"logo,omitempty"`
	LogoFallback string `yaml:"logo-fallback" json:"logo-fallback,omitempty"`
	Date         string `yaml:"date" json:"date,omitempty"`
	Description  string `yaml:"description" json:"description,omitempty"`
}

// Validate checks the presence constraints on the profile using the validator.
func (p *CareerProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
