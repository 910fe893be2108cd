package http

import (
	"github.com/gofiber/fiber/v2"
)

type clearEventsHandler struct {
	*BaseHandler
}

func NewClearEventsHandler(base *BaseHandler) Handler {
	return &clearEventsHandler{BaseHandler: base}
}

func (h *clearEventsHandler) Handle(c *fiber.Ctx) error {
	h.monitor.Clear()
	h.logger.Info("security event log cleared")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "cleared",
	})
}
