package sanitizer

import (
	"regexp"
	"strings"
)

// RejectedURL replaces any URL the validator refuses to pass through.
const RejectedURL = "#"

// deniedSchemes cover script execution, embedded data, local files and the
// browser-internal about pages.
var deniedSchemes = []string{
	"javascript:",
	"vbscript:",
	"data:",
	"file:",
	"about:",
}

var acceptedSchemes = []string{
	"http://",
	"https://",
	"mailto:",
	"tel:",
	"ftp://",
}

var schemeRe = regexp.MustCompile(`^[a-z][a-z0-9+.\-]*:`)

// SanitizeURL classifies a URL by scheme and normalizes or rejects it.
// Classification lower-cases and trims a copy; the returned URL keeps the
// original casing. Deny-listed or unrecognized schemes resolve to
// RejectedURL, relative paths and fragments pass through, and bare
// hostnames gain an https prefix.
func SanitizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RejectedURL
	}

	lower := strings.ToLower(trimmed)
	for _, scheme := range deniedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return RejectedURL
		}
	}
	for _, scheme := range acceptedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return trimmed
		}
	}
	if strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "/") ||
		strings.HasPrefix(trimmed, "./") ||
		strings.HasPrefix(trimmed, "../") {
		return trimmed
	}

	// Any other recognizable scheme is outside the allow-list.
	if schemeRe.MatchString(lower) {
		return RejectedURL
	}

	return "https://" + trimmed
}
