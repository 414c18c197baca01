package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/http/middleware"
	"github.com/preston-bernstein/fantasydata-client/internal/http/requestutil"
	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/providers"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// Error kinds reported to API clients.
const (
	KindSchemaMismatch    = "schema_mismatch"
	KindUpstream          = "upstream"
	KindNotFound          = "not_found"
	KindUnavailable       = "unavailable"
	KindUnsupportedFormat = "unsupported_format"
)

// StandingsResponse is the body of GET /standings/{season}.
type StandingsResponse struct {
	Season    string                 `json:"season"`
	Standings []fantasydata.Standing `json:"standings"`
}

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Kind      string         `json:"kind,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
	Report    *schema.Report `json:"report,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", slog.Any(logging.FieldError, err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, ErrorResponse{Error: message}, logger)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body ErrorResponse, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
	}
	body.RequestID = reqID
	writeJSON(w, status, body, logger)
}

// writeProviderError maps provider failures onto status codes and error kinds.
// Shape drift and other upstream failures are both 502 but carry distinct kinds.
func writeProviderError(w http.ResponseWriter, r *http.Request, err error, report *schema.Report, logger *slog.Logger) {
	status, body := classify(err)
	if report != nil && report.Resource != "" {
		body.Report = report
	}
	writeErrorBody(w, r, status, body, logger)
}

func classify(err error) (int, ErrorResponse) {
	if mErr, ok := schema.AsMismatch(err); ok {
		return http.StatusBadGateway, ErrorResponse{Error: mErr.Error(), Kind: KindSchemaMismatch}
	}
	if sErr, ok := fantasydata.AsStatusError(err); ok && sErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound, ErrorResponse{Error: "season not found upstream", Kind: KindNotFound}
	}
	switch {
	case errors.Is(err, providers.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{Error: err.Error(), Kind: KindUnavailable}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorResponse{Error: "request cancelled", Kind: KindUnavailable}
	case errors.Is(err, fantasydata.ErrUnsupportedFormat):
		return http.StatusNotImplemented, ErrorResponse{Error: err.Error(), Kind: KindUnsupportedFormat}
	}
	return http.StatusBadGateway, ErrorResponse{Error: "upstream request failed", Kind: KindUpstream}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
