package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/NeuralTrust/ContentGuard/pkg/csp"
)

type securityMiddleware struct {
	logger *logrus.Logger
	cfg    config.SecurityConfig
	header string
}

// NewSecurityMiddleware applies the configured security-policy preset and
// companion headers to every response. The policy header is serialized once
// at construction; presets are pure data.
func NewSecurityMiddleware(logger *logrus.Logger, cfg config.SecurityConfig) Middleware {
	return &securityMiddleware{
		logger: logger,
		cfg:    cfg,
		header: csp.Preset(cfg.PolicyPreset).Header(),
	}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.header != "" {
			c.Set("Content-Security-Policy", m.header)
		}

		if m.cfg.FrameDeny {
			c.Set("X-Frame-Options", "DENY")
		}

		if m.cfg.ContentTypeNosniff {
			c.Set("X-Content-Type-Options", "nosniff")
		}

		if m.cfg.ReferrerPolicy != "" {
			c.Set("Referrer-Policy", m.cfg.ReferrerPolicy)
		}

		return c.Next()
	}
}
