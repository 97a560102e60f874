// Package seo derives page metadata and structured data from a career profile.
package seo

import (
	"net/url"
	"strings"
)

// PlatformWebsite is the label for links that match no known platform.
const PlatformWebsite = "website"

// platformPattern maps a host substring to a platform label.
type platformPattern struct {
	pattern string
	label   string
}

// Known platforms, checked in order; first match wins.
var platformPatterns = []platformPattern{
	{"linkedin.com", "linkedin"},
	{"github.com", "github"},
	{"gitlab.com", "gitlab"},
	{"stackoverflow.com", "stackoverflow"},
	{"twitter.com", "twitter"},
	{"x.com", "twitter"},
	{"mastodon.social", "mastodon"},
	{"medium.com", "medium"},
	{"dev.to", "devto"},
	{"dribbble.com", "dribbble"},
	{"behance.net", "behance"},
	{"youtube.com", "youtube"},
	{"instagram.com", "instagram"},
	{"facebook.com", "facebook"},
}

// DetectPlatform identifies the social platform from a link URL.
func DetectPlatform(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformWebsite
	}

	host := strings.ToLower(parsed.Host)
	if host == "" {
		// Scheme-less links like "linkedin.com/in/ada" parse with an empty
		// host; fall back to matching the whole string.
		host = strings.ToLower(urlStr)
	}

	for _, p := range platformPatterns {
		if strings.Contains(host, p.pattern) {
			return p.label
		}
	}

	return PlatformWebsite
}
