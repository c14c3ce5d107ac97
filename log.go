package canopy

import (
	"log/slog"
	"os"
)

// logger receives advisory messages for conditions that degrade to a no-op
// (missing insertion targets, removeFromParent on a root, rejected adds).
var logger = newDefaultLogger()

func newDefaultLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(h).With("lib", "canopy")
}

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return logger
}
