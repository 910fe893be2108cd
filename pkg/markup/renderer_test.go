package markup

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
)

func newTestRenderer() *Renderer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := sanitizer.New(sanitizer.NewBluemondaySanitizer(), logger)
	return NewRenderer(s, logger)
}

func TestRender(t *testing.T) {
	r := newTestRenderer()

	tests := []struct {
		name        string
		source      string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis",
			source:   "**bold** and *italic*",
			contains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "heading",
			source:   "# Title",
			contains: []string{"<h1>Title</h1>"},
		},
		{
			name:     "fenced code block",
			source:   "```go\nfmt.Println(1)\n```",
			contains: []string{"<pre>", "<code"},
		},
		{
			name:     "table",
			source:   "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "strikethrough",
			source:   "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:        "link rewritten",
			source:      "[docs](https://example.com/docs)",
			contains:    []string{`href="https://example.com/docs"`, `rel="noopener noreferrer"`},
			notContains: []string{},
		},
		{
			name:        "embedded script removed",
			source:      "hello <script>alert(1)</script> world",
			contains:    []string{"hello", "world"},
			notContains: []string{"<script", "alert(1)"},
		},
		{
			name:        "javascript link neutralized",
			source:      "[click](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Render(tt.source, sanitizer.DefaultConfig())
			lower := strings.ToLower(out)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, forbidden := range tt.notContains {
				assert.NotContains(t, lower, forbidden)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	r := newTestRenderer()
	assert.Equal(t, "", r.Render("", sanitizer.DefaultConfig()))
}

func TestRenderImagesPerConfig(t *testing.T) {
	r := newTestRenderer()
	source := "![logo](https://example.com/logo.png)"

	out := r.Render(source, sanitizer.DefaultConfig())
	assert.NotContains(t, out, "<img")

	cfg := sanitizer.DefaultConfig()
	cfg.AllowImages = true
	out = r.Render(source, cfg)
	assert.Contains(t, out, "<img")
	assert.Contains(t, out, `src="https://example.com/logo.png"`)
}

// Markup defaults always include links and tables even when the caller's
// profile has them off.
func TestRenderWidensRestrictiveProfile(t *testing.T) {
	r := newTestRenderer()

	out := r.Render("[docs](https://example.com)", sanitizer.SecurityConfig{})
	assert.Contains(t, out, "<a href=")
}
