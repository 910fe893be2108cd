package markup

import (
	"bytes"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	mdhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
)

// Renderer converts lightweight markup to HTML and routes the result through
// the content sanitizer. Raw HTML embedded in the markup is passed through
// the converter untouched; the sanitizer is the single point of trust.
type Renderer struct {
	md        goldmark.Markdown
	sanitizer *sanitizer.Sanitizer
	logger    *logrus.Logger
}

func NewRenderer(s *sanitizer.Sanitizer, logger *logrus.Logger) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(mdhtml.WithUnsafe()),
		),
		sanitizer: s,
		logger:    logger,
	}
}

// Render converts source and sanitizes the produced HTML with markup
// defaults: links, tables, code blocks and markdown extras enabled, images
// per the caller's config. Conversion failure degrades to plain-text
// sanitization of the source.
func (r *Renderer) Render(source string, cfg sanitizer.SecurityConfig) string {
	if source == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		r.logger.WithError(err).Warn("markup conversion failed, falling back to plain text")
		return r.sanitizer.SanitizeText(source)
	}

	return r.sanitizer.SanitizeHTML(buf.String(), markupDefaults(cfg))
}

func markupDefaults(cfg sanitizer.SecurityConfig) sanitizer.SecurityConfig {
	cfg.AllowBasicFormatting = true
	cfg.AllowLinks = true
	cfg.AllowTables = true
	cfg.AllowCodeBlocks = true
	cfg.AllowMarkdownExtras = true
	return cfg
}
