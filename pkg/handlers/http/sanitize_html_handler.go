package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NeuralTrust/ContentGuard/pkg/detector"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
)

type sanitizeHTMLHandler struct {
	*BaseHandler
	sanitizer *sanitizer.Sanitizer
	detector  *detector.Detector
}

func NewSanitizeHTMLHandler(
	base *BaseHandler,
	s *sanitizer.Sanitizer,
	d *detector.Detector,
) Handler {
	return &sanitizeHTMLHandler{
		BaseHandler: base,
		sanitizer:   s,
		detector:    d,
	}
}

type sanitizeHTMLRequest struct {
	Content string                 `json:"content"`
	Options map[string]interface{} `json:"options"`
}

func (h *sanitizeHTMLHandler) Handle(c *fiber.Ctx) error {
	var req sanitizeHTMLRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind sanitize html request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cfg, err := sanitizer.DecodeConfig(req.Options, h.BaseProfile())
	if err != nil {
		h.logger.WithError(err).Error("invalid sanitization options")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.RecordDetection("sanitize_html", h.detector.Detect(req.Content))
	prometheus.SanitizationsTotal.WithLabelValues("html").Inc()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sanitized": h.sanitizer.SanitizeHTML(req.Content, cfg),
	})
}
