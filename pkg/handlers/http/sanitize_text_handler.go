package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NeuralTrust/ContentGuard/pkg/detector"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
)

type sanitizeTextHandler struct {
	*BaseHandler
	sanitizer *sanitizer.Sanitizer
	detector  *detector.Detector
}

func NewSanitizeTextHandler(
	base *BaseHandler,
	s *sanitizer.Sanitizer,
	d *detector.Detector,
) Handler {
	return &sanitizeTextHandler{
		BaseHandler: base,
		sanitizer:   s,
		detector:    d,
	}
}

type sanitizeTextRequest struct {
	Content string `json:"content"`
}

func (h *sanitizeTextHandler) Handle(c *fiber.Ctx) error {
	var req sanitizeTextRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind sanitize text request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.RecordDetection("sanitize_text", h.detector.Detect(req.Content))
	prometheus.SanitizationsTotal.WithLabelValues("text").Inc()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sanitized": h.sanitizer.SanitizeText(req.Content),
	})
}
