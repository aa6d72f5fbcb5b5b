package logger

import (
	"log/slog"
	"os"

	"github.com/jwebster45206/mystery-room/internal/config"
)

// Setup builds the application logger and installs it as the slog
// default. Production gets JSON output for log aggregation; anything
// else gets human-readable text.
func Setup(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler).With("service", "mystery-room")
	slog.SetDefault(log)

	return log
}

// WithRequestID returns a logger scoped to one HTTP request.
func WithRequestID(log *slog.Logger, requestID string) *slog.Logger {
	return log.With("request_id", requestID)
}
