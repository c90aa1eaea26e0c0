package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	// Tag every record so api and worker logs are attributable when
	// both ship to the same sink.
	Log = slog.New(handler).With("service", "cv-backend")
}
