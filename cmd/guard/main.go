package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/NeuralTrust/ContentGuard/pkg/detector"
	handlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/http"
	infraLogger "github.com/NeuralTrust/ContentGuard/pkg/infra/logger"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/markup"
	"github.com/NeuralTrust/ContentGuard/pkg/middleware"
	"github.com/NeuralTrust/ContentGuard/pkg/monitor"
	"github.com/NeuralTrust/ContentGuard/pkg/sanitizer"
	"github.com/NeuralTrust/ContentGuard/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("failed to load config file, using defaults")
	}
	cfg := config.GetConfig()

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: cfg.Metrics.EnableLatency,
	})

	// engine
	eventMonitor := monitor.NewMonitor(cfg.Monitor.Capacity)
	attackDetector := detector.NewDetector(logger)
	contentSanitizer := sanitizer.New(sanitizer.NewBluemondaySanitizer(), logger)
	markupRenderer := markup.NewRenderer(contentSanitizer, logger)

	// middleware
	middlewareTransport := middleware.Transport{
		SecurityMiddleware: middleware.NewSecurityMiddleware(logger, cfg.Security),
		MetricsMiddleware:  middleware.NewMetricsMiddleware(logger),
		RecoverMiddleware:  middleware.NewPanicRecoverMiddleware(logger),
	}

	// handler transport
	baseHandler := handlers.NewBaseHandler(logger, eventMonitor, cfg)
	handlerTransport := handlers.HandlerTransport{
		SanitizeHTMLHandler: handlers.NewSanitizeHTMLHandler(baseHandler, contentSanitizer, attackDetector),
		SanitizeTextHandler: handlers.NewSanitizeTextHandler(baseHandler, contentSanitizer, attackDetector),
		RenderMarkupHandler: handlers.NewRenderMarkupHandler(baseHandler, markupRenderer, attackDetector),
		DetectHandler:       handlers.NewDetectHandler(baseHandler, attackDetector),
		SanitizeURLHandler:  handlers.NewSanitizeURLHandler(baseHandler),
		ValidateFileHandler: handlers.NewValidateFileHandler(baseHandler),
		ListEventsHandler:   handlers.NewListEventsHandler(baseHandler),
		ClearEventsHandler:  handlers.NewClearEventsHandler(baseHandler),
	}

	srv := server.NewGuardServer(server.GuardServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
