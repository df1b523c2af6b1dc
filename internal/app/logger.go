package app

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. When file
// is non-nil, records are also written to it as JSON.
func newLogger(levelStr, formatStr string, outW io.Writer, file io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	if file != nil {
		handler = slogmulti.Fanout(handler, slog.NewJSONHandler(file, handlerOpts))
	}

	return slog.New(handler)
}
