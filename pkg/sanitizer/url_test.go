package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "https passes", input: "https://example.com/page", expected: "https://example.com/page"},
		{name: "http passes", input: "http://example.com", expected: "http://example.com"},
		{name: "mailto passes", input: "mailto:user@example.com", expected: "mailto:user@example.com"},
		{name: "tel passes", input: "tel:+15551234567", expected: "tel:+15551234567"},
		{name: "ftp passes", input: "ftp://files.example.com/a.txt", expected: "ftp://files.example.com/a.txt"},
		{name: "surrounding whitespace trimmed", input: "  https://example.com  ", expected: "https://example.com"},
		{name: "casing preserved", input: "https://Example.com/Path", expected: "https://Example.com/Path"},
		{name: "javascript rejected", input: "javascript:alert(1)", expected: "#"},
		{name: "javascript uppercase rejected", input: "JAVASCRIPT:alert(1)", expected: "#"},
		{name: "vbscript rejected", input: "vbscript:msgbox(1)", expected: "#"},
		{name: "data rejected", input: "data:text/html,<script>alert(1)</script>", expected: "#"},
		{name: "file rejected", input: "file:///etc/passwd", expected: "#"},
		{name: "about rejected", input: "about:blank", expected: "#"},
		{name: "unknown scheme rejected", input: "gopher://example.com", expected: "#"},
		{name: "fragment passes", input: "#section", expected: "#section"},
		{name: "absolute path passes", input: "/docs/readme", expected: "/docs/readme"},
		{name: "relative path passes", input: "./local", expected: "./local"},
		{name: "parent path passes", input: "../up", expected: "../up"},
		{name: "bare hostname gains https", input: "example.com/page", expected: "https://example.com/page"},
		{name: "empty rejected", input: "", expected: "#"},
		{name: "whitespace only rejected", input: "   ", expected: "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeURL(tt.input))
		})
	}
}

// Feeding an output back in yields the same output.
func TestSanitizeURLIdempotent(t *testing.T) {
	inputs := []string{
		"https://example.com",
		"javascript:alert(1)",
		"example.com",
		"#anchor",
		"",
	}

	for _, input := range inputs {
		once := SanitizeURL(input)
		assert.Equal(t, once, SanitizeURL(once), "input %q", input)
	}
}
