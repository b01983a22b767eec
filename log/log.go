package log

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON slog logger tagged with the given component. Level comes
// from LOG_LEVEL (debug, info, warn, error), defaulting to info.
func New(component string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	if component != "" {
		logger = logger.With("component", component)
	}
	return logger
}
