package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/fantasydata-client/internal/http/requestutil"
	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/metrics"
)

// LoggingMiddleware assigns a request ID, carries a request-scoped logger in
// the context and logs one line per request at a level chosen by status class.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		w.Header().Set(requestutil.HeaderRequestID, reqID)

		route := normalizePath(r.URL.Path)
		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldRoute, route),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)

		ctx := withRequestID(logging.WithLogger(r.Context(), logger), reqID)
		ww := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, route, status, duration)

		logger.Log(ctx, levelFor(status), "request complete",
			slog.Int(logging.FieldStatusCode, status),
			slog.Int(logging.FieldBytes, ww.bytes),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// responseWriter remembers the first status written and counts body bytes.
type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Status is the written status, or 200 if the handler wrote nothing.
func (w *responseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

type requestIDKey struct{}

// RequestIDFromContext extracts the request ID stored by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// normalizePath collapses season codes so metrics keep a bounded label set.
func normalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	rest, ok := strings.CutPrefix(path, "/standings/")
	if !ok {
		return path
	}
	if strings.HasSuffix(rest, "/check") {
		return "/standings/:season/check"
	}
	return "/standings/:season"
}
