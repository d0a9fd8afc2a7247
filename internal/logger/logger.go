package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a text slog handler writing to stderr as the default logger.
func Setup(level slog.Level) *slog.Logger {
	return SetupWriter(os.Stderr, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(l)
	return l
}
