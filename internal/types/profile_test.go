package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerProfile_Validate_RequiresName(t *testing.T) {
	profile := &CareerProfile{}
	err := profile.Validate()
	assert.Error(t, err)

	profile.Basics.Name = "Ada Lovelace"
	err = profile.Validate()
	assert.NoError(t, err)
}

func TestCareerProfile_JSONRoundTrip(t *testing.T) {
	original := &CareerProfile{
		Basics: Basics{
			Name:  "Ada Lovelace",
			Label: "Mathematician",
			Email: "ada@example.com",
			Intro: Intro{Text: "First programmer."},
			Contact: []Contact{
				{Heading: "GitHub", Link: "https://github.com/ada", Type: "link", Social: true},
				{Heading: "Phone", Content: "555-1234", Type: "text", Social: false},
			},
		},
		Work: []Entry{
			{Name: "Analytical Engine", LogoFallback: "AE", Date: "1842 - 1843", Description: "Wrote the first published algorithm."},
		},
		Education: []Entry{},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded CareerProfile
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, *original, decoded)
}

func TestCareerProfile_JSONRoundTrip_EmptyCollectionStaysEmpty(t *testing.T) {
	original := &CareerProfile{
		Basics: Basics{Name: "Ada Lovelace"},
		Work:   []Entry{},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded CareerProfile
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotNil(t, decoded.Work)
	assert.Len(t, decoded.Work, 0)
	assert.Nil(t, decoded.Volunteer)
}

func TestCareerProfile_JSONKeysMatchYAMLKeys(t *testing.T) {
	profile := &CareerProfile{
		Basics: Basics{
			Name:        "Ada Lovelace",
			FormAPIKey:  "key-123",
			AnalyticsID: "G-XYZ",
		},
		Work: []Entry{{Name: "Analytical Engine", LogoFallback: "AE"}},
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"form-api-key":"key-123"`)
	assert.Contains(t, string(data), `"analytics-id":"G-XYZ"`)
	assert.Contains(t, string(data), `"logo-fallback":"AE"`)
}
