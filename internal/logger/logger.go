// Package logger builds the service's structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/GunarsK-portfolio/recipe-service/internal/config"
)

// New returns a JSON logger in production and a human-readable text logger
// everywhere else.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg)
}

func newWithWriter(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("service", "recipe-service")
}
