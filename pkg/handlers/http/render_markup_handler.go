package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NeuralTrust/ContentGuard/pkg/detector"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/markup"
	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
)

type renderMarkupHandler struct {
	*BaseHandler
	renderer *markup.Renderer
	detector *detector.Detector
}

func NewRenderMarkupHandler(
	base *BaseHandler,
	r *markup.Renderer,
	d *detector.Detector,
) Handler {
	return &renderMarkupHandler{
		BaseHandler: base,
		renderer:    r,
		detector:    d,
	}
}

type renderMarkupRequest struct {
	Content string                 `json:"content"`
	Options map[string]interface{} `json:"options"`
}

func (h *renderMarkupHandler) Handle(c *fiber.Ctx) error {
	var req renderMarkupRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind render markup request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cfg, err := sanitizer.DecodeConfig(req.Options, h.BaseProfile())
	if err != nil {
		h.logger.WithError(err).Error("invalid sanitization options")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.RecordDetection("render_markup", h.detector.Detect(req.Content))
	prometheus.SanitizationsTotal.WithLabelValues("markup").Inc()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"html": h.renderer.Render(req.Content, cfg),
	})
}
