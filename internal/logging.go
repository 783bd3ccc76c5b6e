package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// InitLogging installs the process-wide logger writing to stdout and
// returns it. Output from the standard log package goes through it too.
func InitLogging(level, format string) *slog.Logger {
	logger := NewLogger(level, format, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a logger without touching the process default.
// Unknown levels fall back to info; any format other than "json" is text.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
