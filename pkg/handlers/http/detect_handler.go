package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fastjson"

	"github.com/NeuralTrust/ContentGuard/pkg/detector"
)

type detectHandler struct {
	*BaseHandler
	detector *detector.Detector
}

func NewDetectHandler(base *BaseHandler, d *detector.Detector) Handler {
	return &detectHandler{
		BaseHandler: base,
		detector:    d,
	}
}

// Handle scans the request body for attack signatures. JSON bodies are
// walked recursively so signatures hidden inside nested string values are
// still seen; anything else is scanned as raw text.
func (h *detectHandler) Handle(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusOK).JSON(h.detector.Detect(""))
	}

	var parser fastjson.Parser
	content := string(body)
	if v, err := parser.ParseBytes(body); err == nil {
		var values []string
		collectStrings(v, &values)
		content = strings.Join(values, "\n")
	}

	result := h.detector.Detect(content)
	h.RecordDetection("detect", result)

	return c.Status(fiber.StatusOK).JSON(result)
}

func collectStrings(v *fastjson.Value, out *[]string) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return
		}
		obj.Visit(func(key []byte, value *fastjson.Value) {
			*out = append(*out, string(key))
			collectStrings(value, out)
		})
	case fastjson.TypeArray:
		for _, item := range v.GetArray() {
			collectStrings(item, out)
		}
	case fastjson.TypeString:
		if s, err := v.StringBytes(); err == nil {
			*out = append(*out, string(s))
		}
	}
}
