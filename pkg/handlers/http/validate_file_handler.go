package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/ContentGuard/pkg/catalog"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/upload"
)

type validateFileHandler struct {
	*BaseHandler
}

func NewValidateFileHandler(base *BaseHandler) Handler {
	return &validateFileHandler{BaseHandler: base}
}

type validateFileRequest struct {
	FileName string                 `json:"file_name"`
	MimeType string                 `json:"mime_type"`
	Size     int64                  `json:"size"`
	Options  map[string]interface{} `json:"options"`
}

func (h *validateFileHandler) Handle(c *fiber.Ctx) error {
	var req validateFileRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind validate file request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	opts := upload.Options{
		AllowedTypes: h.cfg.Upload.AllowedTypes,
		MaxSize:      h.cfg.Upload.MaxSize,
	}
	if len(req.Options) > 0 {
		if err := mapstructure.Decode(req.Options, &opts); err != nil {
			h.logger.WithError(err).Error("invalid file validation options")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to decode options: %v", err),
			})
		}
	}

	result := upload.ValidateFile(req.FileName, req.MimeType, req.Size, opts)
	if result.Valid {
		prometheus.FileValidationsTotal.WithLabelValues("accepted").Inc()
	} else {
		prometheus.FileValidationsTotal.WithLabelValues("rejected").Inc()
		h.monitor.LogEvent("file_rejected", catalog.SeverityMedium, map[string]interface{}{
			"file_name": result.SanitizedName,
			"errors":    result.Errors,
		})
		h.logger.WithFields(logrus.Fields{
			"file_name": result.SanitizedName,
			"errors":    result.Errors,
		}).Warn("upload rejected")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
