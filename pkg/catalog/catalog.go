package catalog

import "regexp"

// Severity classifies how dangerous a matched signature is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

func (s Severity) Rank() int {
	return severityRank[s]
}

// Max returns the higher of the two severities under the
// low < medium < high < critical total order.
func Max(a, b Severity) Severity {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}

// Pattern is a single attack signature. The detection matcher tests whether
// the signature appears in content; the strip expression removes it. For
// block elements (script) the strip expression covers the whole element so
// that its content does not survive as text.
type Pattern struct {
	Name     string
	Severity Severity

	matcher *regexp.Regexp
	strip   *regexp.Regexp
}

func (p Pattern) Matches(content string) bool {
	return p.matcher.MatchString(content)
}

// patterns is compiled once at package init. Order is significant: detection
// results report matches in this order regardless of where they occur in the
// input.
var patterns = []Pattern{
	{
		Name:     "script_tag",
		Severity: SeverityCritical,
		matcher:  regexp.MustCompile(`(?i)<\s*/?\s*script\b`),
		strip:    regexp.MustCompile(`(?is)<\s*script\b[^>]*>.*?<\s*/\s*script\s*>|<\s*/?\s*script\b[^>]*>?`),
	},
	{
		Name:     "javascript_scheme",
		Severity: SeverityCritical,
		matcher:  regexp.MustCompile(`(?i)javascript\s*:`),
		strip:    regexp.MustCompile(`(?i)javascript\s*:`),
	},
	{
		Name:     "vbscript_scheme",
		Severity: SeverityCritical,
		matcher:  regexp.MustCompile(`(?i)vbscript\s*:`),
		strip:    regexp.MustCompile(`(?i)vbscript\s*:`),
	},
	{
		Name:     "data_url_markup",
		Severity: SeverityCritical,
		matcher:  regexp.MustCompile(`(?i)data:\s*(?:text/html|image/svg\+xml|application/xhtml)`),
		strip:    regexp.MustCompile(`(?i)data:\s*(?:text/html|image/svg\+xml|application/xhtml)[^"'\s>]*`),
	},
	{
		Name:     "event_handler",
		Severity: SeverityHigh,
		matcher:  regexp.MustCompile(`(?i)\bon\w+\s*=`),
		strip:    regexp.MustCompile(`(?i)\bon\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`),
	},
	{
		Name:     "css_expression",
		Severity: SeverityHigh,
		matcher:  regexp.MustCompile(`(?i)expression\s*\(`),
		strip:    regexp.MustCompile(`(?i)expression\s*\(`),
	},
	{
		Name:     "base_tag",
		Severity: SeverityHigh,
		matcher:  regexp.MustCompile(`(?i)<\s*base\b`),
		strip:    regexp.MustCompile(`(?i)<\s*base\b[^>]*>?`),
	},
	{
		// The unterminated-iframe OWASP vector ("<iframe src=... <") has no
		// closing ">" and is deliberately not matched here; the sanitizer
		// still removes it during the allow-list pass.
		Name:     "iframe_embed",
		Severity: SeverityMedium,
		matcher:  regexp.MustCompile(`(?i)<\s*iframe\b[^>]*>`),
		strip:    regexp.MustCompile(`(?is)<\s*iframe\b[^>]*>.*?<\s*/\s*iframe\s*>|<\s*iframe\b[^>]*>`),
	},
	{
		Name:     "object_embed",
		Severity: SeverityMedium,
		matcher:  regexp.MustCompile(`(?i)<\s*(?:object|embed|applet)\b`),
		strip:    regexp.MustCompile(`(?i)<\s*(?:object|embed|applet)\b[^>]*>?`),
	},
	{
		Name:     "meta_refresh",
		Severity: SeverityMedium,
		matcher:  regexp.MustCompile(`(?i)<\s*meta\b[^>]*http-equiv\s*=\s*["']?\s*refresh`),
		strip:    regexp.MustCompile(`(?i)<\s*meta\b[^>]*http-equiv\s*=\s*["']?\s*refresh[^>]*>?`),
	},
}

// Patterns returns the catalog in its fixed order. The returned slice must
// not be modified.
func Patterns() []Pattern {
	return patterns
}

// StripAll removes every signature occurrence from content. Stripping loops
// until stable so that nested fragments cannot reassemble into a signature
// after an inner removal (e.g. "<scr<script>ipt>").
func StripAll(content string) string {
	for {
		prev := content
		for _, p := range patterns {
			content = p.strip.ReplaceAllString(content, "")
		}
		if content == prev {
			return content
		}
	}
}
