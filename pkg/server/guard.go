package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/ContentGuard/pkg/config"
	handlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/http"
	"github.com/NeuralTrust/ContentGuard/pkg/middleware"
)

type (
	GuardServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	GuardServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewGuardServer(di GuardServerDI) *GuardServer {
	return &GuardServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *GuardServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting guard server")
	return s.Router.Listen(addr)
}

func (s *GuardServer) Shutdown() error {
	return s.Router.Shutdown()
}

func (s *GuardServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.RecoverMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.SecurityMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	{
		sanitize := v1.Group("/sanitize")
		{
			sanitize.Post("/html", s.handlerTransport.SanitizeHTMLHandler.Handle)
			sanitize.Post("/text", s.handlerTransport.SanitizeTextHandler.Handle)
			sanitize.Post("/url", s.handlerTransport.SanitizeURLHandler.Handle)
		}

		v1.Post("/render", s.handlerTransport.RenderMarkupHandler.Handle)
		v1.Post("/detect", s.handlerTransport.DetectHandler.Handle)
		v1.Post("/files/validate", s.handlerTransport.ValidateFileHandler.Handle)

		events := v1.Group("/events")
		{
			events.Get("", s.handlerTransport.ListEventsHandler.Handle)
			events.Delete("", s.handlerTransport.ClearEventsHandler.Handle)
		}
	}
}
