package cmdutil

import (
	"io"
	"log/slog"
)

// NewLogger builds a text or JSON slog logger at the named level. quiet
// raises the level to error.
func NewLogger(level, format string, quiet bool, w io.Writer) *slog.Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	if quiet {
		lv = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: lv}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
