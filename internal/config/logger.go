package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger from the logger configuration.
// Validate() has already rejected unknown levels, so ParseLevel only falls
// back to info for an empty level string.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout)
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	return logger.Level(level).With().Timestamp().Logger()
}
