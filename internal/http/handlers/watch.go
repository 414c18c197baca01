package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/fantasydata-client/internal/watcher"
)

// StatusSource exposes the background schema check status.
type StatusSource interface {
	Status() watcher.Status
}

// WatchHandler reports the outcome of the background standings checks.
type WatchHandler struct {
	source StatusSource
	logger *slog.Logger
}

func NewWatchHandler(source StatusSource, logger *slog.Logger) *WatchHandler {
	return &WatchHandler{source: source, logger: logger}
}

// Status answers 503 until a cycle has passed and again after three failed
// cycles in a row, so the endpoint can back an alerting probe.
func (h *WatchHandler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if !requireMethod(w, r, nethttp.MethodGet, logger) {
		return
	}
	if h.source == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "watcher not configured", logger)
		return
	}

	status := h.source.Status()
	code := nethttp.StatusOK
	if !status.IsReady() {
		code = nethttp.StatusServiceUnavailable
	}
	writeJSON(w, code, status, logger)
}
