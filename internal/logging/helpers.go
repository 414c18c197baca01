package logging

import (
	"context"
	"log/slog"
)

// The helpers below are no-ops on a nil logger so optional loggers can be
// passed straight through constructors.

func Debug(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelDebug, msg, args)
}

func Info(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelInfo, msg, args)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelWarn, msg, args)
}

// Error logs at error level and attaches err under FieldError when non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	emit(logger, slog.LevelError, msg, args)
}

func emit(logger *slog.Logger, level slog.Level, msg string, args []any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
