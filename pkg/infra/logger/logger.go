package logger

import (
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger: JSON entries, level from LOG_LEVEL,
// asynchronous file output with a console hook at the same level.
func NewLogger() *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if err := os.MkdirAll("logs", 0750); err != nil {
		log.Fatalf("Failed to create logs directory: %v", err)
	}

	fileWriter, err := NewFileWriter("logs/guard.log", 32*1024)
	if err != nil {
		log.Fatalf("Failed to initialize log file writer: %v", err)
	}
	logger.SetOutput(fileWriter)

	logger.AddHook(NewConsoleHook(level))

	return logger
}
