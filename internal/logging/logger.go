package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/reoring/gojmap/internal/config"
)

// NewLogger creates a structured zerolog.Logger writing JSON to stderr so
// stdout stays free for command output.
func NewLogger(cfg *config.Config) zerolog.Logger {
	return New(os.Stderr, cfg)
}

// New is NewLogger with an explicit destination.
func New(w io.Writer, cfg *config.Config) zerolog.Logger {
	ctx := zerolog.New(w).With().Timestamp()

	if cfg.ServiceName != "" {
		ctx = ctx.Str("service", cfg.ServiceName)
	}

	logger := ctx.Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
