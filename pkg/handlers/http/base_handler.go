package http

import (
	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/ContentGuard/pkg/catalog"
	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/NeuralTrust/ContentGuard/pkg/detector"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/monitor"
	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
)

// BaseHandler carries the collaborators every operation handler shares.
type BaseHandler struct {
	logger  *logrus.Logger
	monitor *monitor.Monitor
	cfg     *config.Config
}

func NewBaseHandler(
	logger *logrus.Logger,
	mon *monitor.Monitor,
	cfg *config.Config,
) *BaseHandler {
	return &BaseHandler{
		logger:  logger,
		monitor: mon,
		cfg:     cfg,
	}
}

// BaseProfile resolves the configured default sanitization profile.
func (h *BaseHandler) BaseProfile() sanitizer.SecurityConfig {
	if h.cfg.Sanitizer.Profile == "chat" {
		return sanitizer.ChatConfig()
	}
	return sanitizer.DefaultConfig()
}

// RecordDetection stores a detection in the monitor, bumps the detection
// counter and logs at a verbosity matching the severity.
func (h *BaseHandler) RecordDetection(source string, result detector.Result) {
	if !result.Detected {
		return
	}

	prometheus.DetectionsTotal.WithLabelValues(string(result.Severity)).Inc()
	h.monitor.LogEvent("attack_detected", result.Severity, map[string]interface{}{
		"source":   source,
		"patterns": result.Patterns,
	})

	entry := h.logger.WithFields(logrus.Fields{
		"source":   source,
		"patterns": result.Patterns,
		"severity": result.Severity,
	})
	switch result.Severity {
	case catalog.SeverityCritical, catalog.SeverityHigh:
		entry.Error("attack signatures detected")
	case catalog.SeverityMedium:
		entry.Warn("attack signatures detected")
	default:
		entry.Info("attack signatures detected")
	}
}
