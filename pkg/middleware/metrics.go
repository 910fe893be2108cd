package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		prometheus.RequestsTotal.WithLabelValues(
			c.Method(),
			strconv.Itoa(status),
		).Inc()

		if prometheus.Config.EnableLatency {
			elapsed := float64(time.Since(start).Microseconds()) / 1000.0
			prometheus.RequestLatency.WithLabelValues(c.Path()).Observe(elapsed)
		}

		return err
	}
}
