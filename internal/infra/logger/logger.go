package logger

import (
	"log/slog"
	"os"
)

// New настраивает логгер процесса: в dev человекочитаемый текст с
// уровнем Debug, иначе JSON с уровнем Info.
func New(env string) *slog.Logger {
	if env == "dev" {
		h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(h)
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h)
}
