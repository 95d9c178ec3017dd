package logger

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

// AppLogger wraps logrus with the gateway's formatting conventions
type AppLogger struct {
	*logrus.Logger
}

// NewAppLogger creates a structured application logger from config
func NewAppLogger(config models.LoggerConfig) *AppLogger {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if config.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	return &AppLogger{Logger: log}
}
