package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
)

type sanitizeURLHandler struct {
	*BaseHandler
}

func NewSanitizeURLHandler(base *BaseHandler) Handler {
	return &sanitizeURLHandler{BaseHandler: base}
}

type sanitizeURLRequest struct {
	URL string `json:"url"`
}

func (h *sanitizeURLHandler) Handle(c *fiber.Ctx) error {
	var req sanitizeURLRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind sanitize url request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sanitized := sanitizer.SanitizeURL(req.URL)
	if sanitized == sanitizer.RejectedURL && req.URL != sanitizer.RejectedURL {
		prometheus.RejectedURLsTotal.Inc()
		h.logger.WithField("url", req.URL).Warn("url rejected by scheme policy")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sanitized": sanitized,
	})
}
