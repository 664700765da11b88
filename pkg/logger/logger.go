package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log = slog.Default()

// Init configures the global JSON logger. LOG_LEVEL controls verbosity
// (debug, info, warn, error); anything else falls back to info.
func Init() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
