// Package logger builds the logrus loggers used across the service
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a JSON logger whose level follows APP_ENV and LOG_LEVEL
func New() *logrus.Logger {
	log := logrus.New()
	Configure(log, os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	return log
}

// Configure sets the JSON formatter and the level on an existing logger
func Configure(log *logrus.Logger, environment, level string) {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelFor(environment, level))
}

// LevelFor resolves the log level. An explicit, parseable level wins over
// the environment default.
func LevelFor(environment, level string) logrus.Level {
	if level != "" {
		if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
			return parsed
		}
	}
	switch environment {
	case "development", "":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
