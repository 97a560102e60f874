// Package rendering merges a career profile and theme palette into an HTML template.
package rendering

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cv-builder/internal/seo"
	"github.com/jonathan/cv-builder/internal/types"
)

// Placeholder markers the template must contain.
const (
	MarkerPageTitle       = "{{ PAGE_TITLE }}"
	MarkerMetaDescription = "{{ META_DESCRIPTION }}"
	MarkerJSONLD          = "{{ JSON_LD }}"
	MarkerCVData          = "{{ CV_DATA }}"
)

// MarkerThemeExtraCSS is optional: templates that carry it receive generated
// custom-property declarations for the decorative theme groups.
const MarkerThemeExtraCSS = "{{ THEME_EXTRA_CSS }}"

var requiredMarkers = []string{
	MarkerPageTitle,
	MarkerMetaDescription,
	MarkerJSONLD,
	MarkerCVData,
}

// Render produces the complete output document in memory. Nothing is written
// to disk here; a failed render leaves no partial output behind.
func Render(profile *types.CareerProfile, palette *types.ThemePalette, templatePath string) (string, error) {
	template, err := loadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	if err := checkMarkers(template); err != nil {
		return "", err
	}

	out := injectTheme(template, palette)

	out, err = injectSEO(out, profile)
	if err != nil {
		return "", err
	}

	return embedProfile(out, profile)
}

// loadTemplate reads the template document from disk.
func loadTemplate(templatePath string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return string(content), nil
}

// checkMarkers verifies every required placeholder up front so a broken
// template fails before any substitution happens.
func checkMarkers(template string) error {
	for _, marker := range requiredMarkers {
		if !strings.Contains(template, marker) {
			return &TemplateError{
				Marker:  marker,
				Message: fmt.Sprintf("template is missing required marker %s", marker),
			}
		}
	}
	return nil
}

// injectTheme substitutes every color-role token in the style block with the
// resolved palette value. The palette arrives fully merged over the default
// table, so no token for a documented role survives substitution.
func injectTheme(template string, palette *types.ThemePalette) string {
	for role, value := range palette.Light {
		template = strings.ReplaceAll(template, themeToken("LIGHT", role), value)
	}
	for role, value := range palette.Dark {
		template = strings.ReplaceAll(template, themeToken("DARK", role), value)
	}
	if strings.Contains(template, MarkerThemeExtraCSS) {
		template = strings.ReplaceAll(template, MarkerThemeExtraCSS, extraThemeCSS(palette))
	}
	return template
}

// themeToken builds the placeholder token for a variant and color role,
// e.g. ("LIGHT", "text-primary") -> "{{ THEME_LIGHT_TEXT_PRIMARY }}".
func themeToken(variant, role string) string {
	name := strings.ToUpper(strings.ReplaceAll(role, "-", "_"))
	return fmt.Sprintf("{{ THEME_%s_%s }}", variant, name)
}

// injectSEO splices the derived title, meta description, and structured data.
func injectSEO(template string, profile *types.CareerProfile) (string, error) {
	template = strings.ReplaceAll(template, MarkerPageTitle, EscapeHTML(seo.PageTitle(profile.Basics)))
	template = strings.ReplaceAll(template, MarkerMetaDescription, EscapeHTML(seo.MetaDescription(profile.Basics)))

	jsonLD, err := seo.JSONLD(profile)
	if err != nil {
		return "", &RenderError{Message: "failed to build JSON-LD", Cause: err}
	}
	script := "<script type=\"application/ld+json\">\n" + jsonLD + "\n</script>"
	return strings.ReplaceAll(template, MarkerJSONLD, script), nil
}

// embedProfile serializes the profile and splices it where the front-end
// JavaScript expects to find it.
func embedProfile(template string, profile *types.CareerProfile) (string, error) {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", &RenderError{Message: "failed to serialize career data", Cause: err}
	}
	return strings.ReplaceAll(template, MarkerCVData, string(data)), nil
}
