package sanitizer

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	nethtml "golang.org/x/net/html"

	"github.com/NeuralTrust/ContentGuard/pkg/catalog"
)

// Sanitizer turns untrusted HTML fragments and text into output that is safe
// to render. All methods are pure and safe for concurrent use.
type Sanitizer struct {
	html   HTMLSanitizer
	logger *logrus.Logger
}

func New(primitive HTMLSanitizer, logger *logrus.Logger) *Sanitizer {
	return &Sanitizer{
		html:   primitive,
		logger: logger,
	}
}

var (
	// The post-pass regexes assume double-quoted attribute serialization,
	// which bluemonday guarantees for its output. A replacement primitive
	// must keep that serialization or the href/src re-validation below is
	// bypassed; the contract is pinned by test.
	hrefValueRe = regexp.MustCompile(`(?i)(<a\b[^>]*?\bhref=")([^"]*)(")`)
	srcValueRe  = regexp.MustCompile(`(?i)(<img\b[^>]*?\bsrc=")([^"]*)(")`)
	anchorTagRe = regexp.MustCompile(`(?i)<a\b[^>]*>`)
	relAttrRe   = regexp.MustCompile(`(?i)\s*\brel="[^"]*"`)

	residualSchemeRe  = regexp.MustCompile(`(?i)javascript\s*:|vbscript\s*:|data\s*:`)
	residualHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	controlCharRe     = regexp.MustCompile("[\\x00-\\x08\\x0b\\x0c\\x0e-\\x1f\\x7f-\\x9f]")
)

// SanitizeHTML reduces html to the allow-list derived from cfg. Known attack
// signatures are stripped ahead of the allow-list pass, and surviving link
// and image targets are re-validated afterwards. The operation is idempotent
// for a fixed config and never fails; empty input yields an empty string.
func (s *Sanitizer) SanitizeHTML(html string, cfg SecurityConfig) string {
	if html == "" {
		return ""
	}
	if cfg.StripAllHTML {
		return s.SanitizeText(html)
	}

	// Defense in depth: remove catalog signatures before the allow-list
	// pass so a primitive miss cannot let one through.
	out := catalog.StripAll(html)
	out = s.html.Sanitize(out, cfg.allowList())
	out = rewriteLinks(out)
	out = rewriteImageSources(out)
	return out
}

// SanitizeText strips all markup keeping text content, removes residual
// dangerous-scheme and event-handler substrings and control characters,
// and trims surrounding whitespace. Unlike SanitizeHTML it preserves the
// raw text of script and style elements, which the allow-list primitive
// drops together with the element.
func (s *Sanitizer) SanitizeText(text string) string {
	if text == "" {
		return ""
	}
	out := extractText(text)
	out = residualSchemeRe.ReplaceAllString(out, "")
	out = residualHandlerRe.ReplaceAllString(out, "")
	out = controlCharRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// extractText concatenates the text nodes of markup, including the raw text
// of script and style elements; comments and doctypes are discarded. Text
// nodes come back entity-decoded, so extraction repeats until stable and
// any decoded fragment that parses as a tag is stripped on the next round.
func extractText(markup string) string {
	for {
		tz := nethtml.NewTokenizer(strings.NewReader(markup))
		var b strings.Builder
	tokens:
		for {
			switch tz.Next() {
			case nethtml.ErrorToken:
				break tokens
			case nethtml.TextToken:
				b.Write(tz.Text())
			}
		}
		out := b.String()
		if out == markup {
			return out
		}
		markup = out
	}
}

// escaper covers the characters meaningful in HTML and attribute contexts,
// including backtick and equals which some legacy parsers treat as attribute
// delimiters.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#x60;",
	"=", "&#x3D;",
)

// EscapeHTML entity-escapes text for safe interpolation into markup.
func EscapeHTML(text string) string {
	return escaper.Replace(text)
}

// rewriteLinks routes every surviving href through the URL validator and
// forces rel="noopener noreferrer" on anchors.
func rewriteLinks(html string) string {
	out := hrefValueRe.ReplaceAllStringFunc(html, func(match string) string {
		parts := hrefValueRe.FindStringSubmatch(match)
		return parts[1] + SanitizeURL(parts[2]) + parts[3]
	})
	return anchorTagRe.ReplaceAllStringFunc(out, func(tag string) string {
		inner := strings.TrimSuffix(tag, ">")
		inner = relAttrRe.ReplaceAllString(inner, "")
		return inner + ` rel="noopener noreferrer">`
	})
}

func rewriteImageSources(html string) string {
	return srcValueRe.ReplaceAllStringFunc(html, func(match string) string {
		parts := srcValueRe.FindStringSubmatch(match)
		return parts[1] + SanitizeURL(parts[2]) + parts[3]
	})
}
