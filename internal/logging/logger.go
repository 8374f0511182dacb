package logging

import (
	"log/slog"
	"os"
)

// fallback writes to stderr and is used where the default logger may route
// back into the database handler.
var fallback = slog.New(slog.NewJSONHandler(os.Stderr, nil))

// Setup initializes the global slog logger with JSON output to stdout.
// Development builds also log at debug level.
func Setup(appEnv string) *slog.JSONHandler {
	level := slog.LevelInfo
	if appEnv == "development" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return handler
}
