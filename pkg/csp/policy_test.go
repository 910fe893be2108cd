package csp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyHeader(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		expected string
	}{
		{
			name: "two directives",
			policy: Policy{
				{Name: "default-src", Value: "'self'"},
				{Name: "script-src", Value: "'self' 'unsafe-inline'"},
			},
			expected: "default-src 'self'; script-src 'self' 'unsafe-inline'",
		},
		{
			name: "valueless directive",
			policy: Policy{
				{Name: "default-src", Value: "'none'"},
				{Name: "upgrade-insecure-requests", Value: ""},
			},
			expected: "default-src 'none'; upgrade-insecure-requests",
		},
		{
			name: "nameless entries skipped",
			policy: Policy{
				{Name: "", Value: "'self'"},
				{Name: "img-src", Value: "'self'"},
			},
			expected: "img-src 'self'",
		},
		{
			name:     "empty policy",
			policy:   Policy{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.Header())
		})
	}
}

// Directive order is preserved verbatim so the header is deterministic.
func TestPolicyHeaderDeterministic(t *testing.T) {
	p := StrictPolicy()
	first := p.Header()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Header())
	}
	assert.True(t, strings.HasPrefix(first, "default-src 'none'"))
}

func TestStrictPolicy(t *testing.T) {
	header := StrictPolicy().Header()

	assert.Contains(t, header, "default-src 'none'")
	assert.Contains(t, header, "object-src 'none'")
	assert.Contains(t, header, "frame-ancestors 'none'")
	assert.Contains(t, header, "upgrade-insecure-requests")
	assert.NotContains(t, header, "unsafe-inline")
}

func TestModeratePolicy(t *testing.T) {
	header := ModeratePolicy().Header()

	assert.Contains(t, header, "default-src 'self'")
	assert.Contains(t, header, "script-src 'self' 'unsafe-inline' 'unsafe-eval'")
	assert.Contains(t, header, "img-src 'self' data: https:")
}

func TestPreset(t *testing.T) {
	assert.Equal(t, ModeratePolicy(), Preset("moderate"))
	assert.Equal(t, ModeratePolicy(), Preset("MODERATE"))
	assert.Equal(t, StrictPolicy(), Preset("strict"))
	assert.Equal(t, StrictPolicy(), Preset(""))
	assert.Equal(t, StrictPolicy(), Preset("unknown"))
}
