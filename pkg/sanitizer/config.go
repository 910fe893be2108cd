package sanitizer

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// SecurityConfig controls which constructs survive sanitization. The engine
// never mutates a config; callers may share one across goroutines.
type SecurityConfig struct {
	AllowBasicFormatting bool `mapstructure:"allow_basic_formatting" json:"allow_basic_formatting"`
	AllowLinks           bool `mapstructure:"allow_links" json:"allow_links"`
	AllowImages          bool `mapstructure:"allow_images" json:"allow_images"`
	AllowTables          bool `mapstructure:"allow_tables" json:"allow_tables"`
	AllowCodeBlocks      bool `mapstructure:"allow_code_blocks" json:"allow_code_blocks"`
	AllowMarkdownExtras  bool `mapstructure:"allow_markdown_extras" json:"allow_markdown_extras"`
	StripAllHTML         bool `mapstructure:"strip_all_html" json:"strip_all_html"`
}

// DefaultConfig permits basic formatting only.
func DefaultConfig() SecurityConfig {
	return SecurityConfig{
		AllowBasicFormatting: true,
	}
}

// ChatConfig is the profile applied to rendered chat messages: rich markup
// without images.
func ChatConfig() SecurityConfig {
	return SecurityConfig{
		AllowBasicFormatting: true,
		AllowLinks:           true,
		AllowTables:          true,
		AllowCodeBlocks:      true,
		AllowMarkdownExtras:  true,
	}
}

// DecodeConfig decodes a loose options map into a SecurityConfig on top of
// the given base profile. Unknown keys are rejected so that a mistyped
// option cannot silently widen the allow-list.
func DecodeConfig(settings map[string]interface{}, base SecurityConfig) (SecurityConfig, error) {
	cfg := base
	if len(settings) == 0 {
		return cfg, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return base, fmt.Errorf("failed to build options decoder: %w", err)
	}
	if err := decoder.Decode(settings); err != nil {
		return base, fmt.Errorf("failed to decode options: %w", err)
	}
	return cfg, nil
}

// allowList expands the config flags into the concrete tag and attribute
// sets handed to the sanitization primitive.
func (c SecurityConfig) allowList() AllowList {
	rules := AllowList{
		Attrs:         map[string][]string{},
		ForbiddenTags: forbiddenTags,
		URLSchemes:    allowedURLSchemes,
	}

	if c.AllowBasicFormatting {
		rules.Tags = append(rules.Tags,
			"p", "br", "hr", "div", "span",
			"strong", "em", "b", "i", "u", "s",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"ul", "ol", "li", "blockquote",
		)
	}
	if c.AllowLinks {
		rules.Tags = append(rules.Tags, "a")
		rules.Attrs["a"] = []string{"href", "title", "rel", "target"}
	}
	if c.AllowImages {
		rules.Tags = append(rules.Tags, "img")
		rules.Attrs["img"] = []string{"src", "alt", "title", "width", "height"}
	}
	if c.AllowTables {
		rules.Tags = append(rules.Tags, "table", "thead", "tbody", "tr", "th", "td")
		rules.Attrs["th"] = []string{"colspan", "rowspan", "align"}
		rules.Attrs["td"] = []string{"colspan", "rowspan", "align"}
	}
	if c.AllowCodeBlocks {
		rules.Tags = append(rules.Tags, "pre", "code")
		rules.Attrs["code"] = []string{"class"}
	}
	if c.AllowMarkdownExtras {
		rules.Tags = append(rules.Tags, "del", "ins", "sup", "sub", "kbd", "mark")
	}

	return rules
}

// forbiddenTags always drop with their content, whatever the config says.
var forbiddenTags = []string{
	"script", "iframe", "object", "embed", "form", "input",
	"textarea", "button", "link", "style", "meta", "base",
}

var allowedURLSchemes = []string{"http", "https", "mailto", "tel", "ftp"}
