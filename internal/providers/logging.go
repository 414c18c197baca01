package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// logFetch tags a fetch event with the provider, resource and season. Schema
// mismatches log at error level since retrying cannot fix them.
func (r *retryingProvider) logFetch(ctx context.Context, logger *slog.Logger, msg, resource, season string, err error, args ...any) {
	if logger == nil {
		return
	}
	level := slog.LevelWarn
	if schema.IsMismatch(err) {
		level = slog.LevelError
	}
	args = append(args,
		slog.String(logging.FieldProvider, r.providerName),
		slog.String(logging.FieldResource, resource),
		slog.String(logging.FieldSeason, season),
		slog.Any(logging.FieldError, err),
	)
	logger.Log(ctx, level, msg, args...)
}
