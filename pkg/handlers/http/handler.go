package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(c *fiber.Ctx) error
}

type HandlerTransport struct {
	SanitizeHTMLHandler Handler
	SanitizeTextHandler Handler
	RenderMarkupHandler Handler
	DetectHandler       Handler
	SanitizeURLHandler  Handler
	ValidateFileHandler Handler
	ListEventsHandler   Handler
	ClearEventsHandler  Handler
}
