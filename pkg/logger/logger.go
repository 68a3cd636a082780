package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init configures the process-wide JSON logger. Debug level is only
// enabled outside production to keep request logs lean.
func Init(env string) {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
