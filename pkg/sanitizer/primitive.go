package sanitizer

import "github.com/microcosm-cc/bluemonday"

// AllowList is the concrete rule set handed to an HTMLSanitizer: which tags
// survive, which attributes each tag keeps, which tags are forbidden outright,
// and which URL schemes attribute values may carry. Every element outside
// Tags is removed together with its content.
type AllowList struct {
	Tags          []string
	Attrs         map[string][]string
	ForbiddenTags []string
	URLSchemes    []string
}

// HTMLSanitizer is the generic allow-list sanitization primitive. Any
// implementation honoring the AllowList contract can back the Sanitizer.
type HTMLSanitizer interface {
	Sanitize(html string, rules AllowList) string
}

// BluemondaySanitizer implements HTMLSanitizer on top of bluemonday. A
// policy is built per call from the rule set; bluemonday policies are not
// mutated after construction, so the type is safe for concurrent use.
type BluemondaySanitizer struct{}

func NewBluemondaySanitizer() HTMLSanitizer {
	return &BluemondaySanitizer{}
}

// knownElements is the standard HTML element inventory, current and
// deprecated. It feeds the skip-content set: bluemonday's default for a
// disallowed element is to drop the tag but keep its text, whereas the
// engine removes a disallowed element together with its content.
var knownElements = []string{
	"a", "abbr", "acronym", "address", "applet", "area", "article", "aside",
	"audio", "b", "base", "basefont", "bdi", "bdo", "big", "blink",
	"blockquote", "body", "br", "button", "canvas", "caption", "center",
	"cite", "code", "col", "colgroup", "data", "datalist", "dd", "del",
	"details", "dfn", "dialog", "dir", "div", "dl", "dt", "em", "embed",
	"fieldset", "figcaption", "figure", "font", "footer", "form", "frame",
	"frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header",
	"hgroup", "hr", "html", "i", "iframe", "img", "input", "ins", "kbd",
	"keygen", "label", "legend", "li", "link", "main", "map", "mark",
	"marquee", "menu", "meta", "meter", "nav", "noembed", "noframes",
	"noscript", "object", "ol", "optgroup", "option", "output", "p",
	"param", "picture", "plaintext", "pre", "progress", "q", "rp", "rt",
	"ruby", "s", "samp", "script", "section", "select", "slot", "small",
	"source", "span", "strike", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track", "tt", "u", "ul", "var", "video", "wbr",
	"xmp",
}

// voidElements carry no content. They stay out of the skip-content set: an
// unclosed skip entry makes bluemonday swallow the rest of the document,
// and for a void element dropping the tag alone already removes the whole
// element.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "basefont": {}, "br": {}, "col": {},
	"embed": {}, "hr": {}, "img": {}, "input": {}, "keygen": {},
	"link": {}, "meta": {}, "param": {}, "source": {}, "track": {},
	"wbr": {},
}

func (s *BluemondaySanitizer) Sanitize(html string, rules AllowList) string {
	p := bluemonday.NewPolicy()

	allowed := make(map[string]struct{}, len(rules.Tags))
	for _, tag := range rules.Tags {
		if attrs := rules.Attrs[tag]; len(attrs) > 0 {
			p.AllowAttrs(attrs...).OnElements(tag)
		}
		p.AllowElements(tag)
		allowed[tag] = struct{}{}
	}

	if len(rules.URLSchemes) > 0 {
		p.AllowURLSchemes(rules.URLSchemes...)
		p.AllowRelativeURLs(true)
		p.RequireParseableURLs(true)
	}

	skip := make([]string, 0, len(knownElements))
	for _, tag := range knownElements {
		if _, ok := allowed[tag]; ok {
			continue
		}
		if _, void := voidElements[tag]; void {
			continue
		}
		skip = append(skip, tag)
	}
	for _, tag := range rules.ForbiddenTags {
		if _, void := voidElements[tag]; !void {
			skip = append(skip, tag)
		}
	}
	if len(skip) > 0 {
		p.SkipElementsContent(skip...)
	}

	return p.Sanitize(html)
}
