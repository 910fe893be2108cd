package http

import (
	"github.com/gofiber/fiber/v2"
)

type listEventsHandler struct {
	*BaseHandler
}

func NewListEventsHandler(base *BaseHandler) Handler {
	return &listEventsHandler{BaseHandler: base}
}

func (h *listEventsHandler) Handle(c *fiber.Ctx) error {
	events := h.monitor.Events()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":  len(events),
		"events": events,
	})
}
