package csp

import "strings"

// Directive is a single content-security-policy entry. An empty Value emits
// the bare directive name (e.g. upgrade-insecure-requests).
type Directive struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Policy is an ordered directive list. Order is preserved verbatim in the
// serialized header.
type Policy []Directive

// Header serializes the policy into a Content-Security-Policy header value.
func (p Policy) Header() string {
	parts := make([]string, 0, len(p))
	for _, d := range p {
		if d.Name == "" {
			continue
		}
		if d.Value == "" {
			parts = append(parts, d.Name)
			continue
		}
		parts = append(parts, d.Name+" "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// StrictPolicy locks everything down to same-origin and forbids inline
// script and style entirely.
func StrictPolicy() Policy {
	return Policy{
		{Name: "default-src", Value: "'none'"},
		{Name: "script-src", Value: "'self'"},
		{Name: "style-src", Value: "'self'"},
		{Name: "img-src", Value: "'self'"},
		{Name: "font-src", Value: "'self'"},
		{Name: "connect-src", Value: "'self'"},
		{Name: "object-src", Value: "'none'"},
		{Name: "base-uri", Value: "'self'"},
		{Name: "form-action", Value: "'self'"},
		{Name: "frame-ancestors", Value: "'none'"},
		{Name: "upgrade-insecure-requests", Value: ""},
	}
}

// ModeratePolicy trades strictness for compatibility with inline scripts
// and styles.
func ModeratePolicy() Policy {
	return Policy{
		{Name: "default-src", Value: "'self'"},
		{Name: "script-src", Value: "'self' 'unsafe-inline' 'unsafe-eval'"},
		{Name: "style-src", Value: "'self' 'unsafe-inline'"},
		{Name: "img-src", Value: "'self' data: https:"},
		{Name: "font-src", Value: "'self'"},
		{Name: "connect-src", Value: "'self'"},
		{Name: "object-src", Value: "'none'"},
		{Name: "frame-ancestors", Value: "'self'"},
	}
}

// Preset resolves a named profile, defaulting to strict.
func Preset(name string) Policy {
	if strings.EqualFold(name, "moderate") {
		return ModeratePolicy()
	}
	return StrictPolicy()
}
