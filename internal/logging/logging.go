// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pi-auth-api/internal/config"
)

// Setup applies the logging configuration to the standard logrus logger
func Setup(cfg config.LoggingConfig) {
	Configure(logrus.StandardLogger(), cfg)
}

// Configure applies level and format settings to the given logger
func Configure(logger *logrus.Logger, cfg config.LoggingConfig) {
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}
}

// RedactUID shortens an identifier so logs can correlate requests without recording it
func RedactUID(uid string) string {
	const keep = 4
	if len(uid) <= keep {
		return strings.Repeat("*", len(uid))
	}
	return uid[:keep] + "***"
}
