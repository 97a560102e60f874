// Package seo derives page metadata and structured data from a career profile.
package seo

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-builder/internal/types"
)

// maxMetaDescriptionLen is the conventional search-snippet limit; longer
// summaries are truncated at a word boundary.
const maxMetaDescriptionLen = 160

// PageTitle computes the document title from the identity fields.
func PageTitle(basics types.Basics) string {
	if basics.Label == "" {
		return basics.Name
	}
	return fmt.Sprintf("%s - %s", basics.Name, basics.Label)
}

// MetaDescription computes the meta description from the intro text,
// collapsing whitespace and truncating to at most 160 characters at a word
// boundary. When the profile has no intro, a short identity line is used.
func MetaDescription(basics types.Basics) string {
	text := strings.Join(strings.Fields(basics.Intro.Text), " ")
	if text == "" {
		if basics.Label == "" {
			text = fmt.Sprintf("Online CV of %s.", basics.Name)
		} else {
			text = fmt.Sprintf("Online CV of %s, %s.", basics.Name, basics.Label)
		}
	}
	return truncateAtWord(text, maxMetaDescriptionLen)
}

// SocialLink is a contact link selected for structured-data derivation.
type SocialLink struct {
	URL      string
	Platform string
}

// SocialLinks returns the contact entries flagged social with a non-empty
// link, in source order. Entries excluded here still pass through in the
// embedded profile data.
func SocialLinks(profile *types.CareerProfile) []SocialLink {
	links := []SocialLink{}
	for _, contact := range profile.Basics.Contact {
		if !contact.Social || contact.Link == "" {
			continue
		}
		links = append(links, SocialLink{
			URL:      contact.Link,
			Platform: DetectPlatform(contact.Link),
		})
	}
	return links
}

// person is the Schema.org Person markup embedded in the page head.
type person struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	JobTitle    string   `json:"jobTitle,omitempty"`
	Email       string   `json:"email,omitempty"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
}

// JSONLD serializes Schema.org Person markup mirroring the identity and
// social-link data. The caller wraps the result in a script element.
func JSONLD(profile *types.CareerProfile) (string, error) {
	p := person{
		Context:     "https://schema.org",
		Type:        "Person",
		Name:        profile.Basics.Name,
		JobTitle:    profile.Basics.Label,
		Image:       profile.Basics.Image,
		Description: MetaDescription(profile.Basics),
	}
	if profile.Basics.Email != "" {
		p.Email = "mailto:" + profile.Basics.Email
	}
	for _, link := range SocialLinks(profile) {
		p.SameAs = append(p.SameAs, link.URL)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON-LD: %w", err)
	}
	return string(data), nil
}

// truncateAtWord shortens s to at most max runes, cutting only between
// words and appending an ellipsis when anything was dropped.
func truncateAtWord(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	var sb strings.Builder
	count := 0
	for _, word := range strings.Fields(s) {
		extra := utf8.RuneCountInString(word)
		if count > 0 {
			extra++
		}
		// Reserve one rune for the ellipsis.
		if count+extra > max-1 {
			break
		}
		if count > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(word)
		count += extra
	}
	return sb.String() + "…"
}
