package graph

import (
	"testing"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/person"
)

// TestLinkToken tests external token extraction from node keys
func TestLinkToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"L1AB-2CD", "L1AB-2CD"},
		{"L1AB-2CD2", "L1AB-2CD"},
		{"L1AB-2CD13", "L1AB-2CD"},
		{"l1ab-2cd", "l1ab-2cd"}, // lowercase is not token-shaped
		{"L1A-2CD", "L1A-2CD"},
		{"person-7", "person-7"},
		{"", ""},
	}

	for _, tt := range tests {
		result := linkToken(tt.input)
		if result != tt.expected {
			t.Errorf("linkToken(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

// TestLinkURL tests record URL formatting
func TestLinkURL(t *testing.T) {
	if got := linkURL("https://example.org/p/%s", "AB12-CDE"); got != "https://example.org/p/AB12-CDE" {
		t.Errorf("linkURL = %q", got)
	}
	if got := linkURL("", "AB12-CDE"); got != "" {
		t.Errorf("linkURL with empty template = %q, want empty", got)
	}
	if got := linkURL("https://example.org", "AB12-CDE"); got != "" {
		t.Errorf("linkURL without placeholder = %q, want empty", got)
	}
}

// TestCategoryOf tests sex to category mapping
func TestCategoryOf(t *testing.T) {
	tests := map[person.Sex]string{
		person.SexMale:    CategoryMale,
		person.SexFemale:  CategoryFemale,
		person.SexUnknown: CategoryUnknown,
		"":                CategoryUnknown,
	}
	for sex, expected := range tests {
		if got := categoryOf(sex); got != expected {
			t.Errorf("categoryOf(%q) = %q, want %q", sex, got, expected)
		}
	}
}

// TestOptionsFromConfig tests that blank colors keep defaults
func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.GraphConfig{FemaleColor: "#ffffff", LinkURL: "https://x/%s"})

	if opts.FemaleColor != "#ffffff" {
		t.Errorf("FemaleColor = %q, want override", opts.FemaleColor)
	}
	if opts.MaleColor != defaultMaleColor || opts.UnknownColor != defaultUnknownColor {
		t.Errorf("Expected default colors, got %+v", opts)
	}
	if opts.LinkURL != "https://x/%s" {
		t.Errorf("LinkURL = %q", opts.LinkURL)
	}
}
