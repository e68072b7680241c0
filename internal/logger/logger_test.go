package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	testCases := []struct {
		name        string
		environment string
		level       string
		expected    logrus.Level
	}{
		{name: "development defaults to debug", environment: "development", expected: logrus.DebugLevel},
		{name: "unset environment defaults to debug", expected: logrus.DebugLevel},
		{name: "production defaults to error", environment: "production", expected: logrus.ErrorLevel},
		{name: "other environments default to info", environment: "staging", expected: logrus.InfoLevel},
		{name: "explicit level wins", environment: "production", level: "warn", expected: logrus.WarnLevel},
		{name: "level is case insensitive", environment: "development", level: "INFO", expected: logrus.InfoLevel},
		{name: "invalid level falls back", environment: "production", level: "loud", expected: logrus.ErrorLevel},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelFor(tt.environment, tt.level))
		})
	}
}

func TestConfigureUsesJSONFormatter(t *testing.T) {
	log := logrus.New()
	Configure(log, "production", "")

	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
	assert.Equal(t, logrus.ErrorLevel, log.GetLevel())
}
