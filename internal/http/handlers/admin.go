package handlers

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
	"github.com/preston-bernstein/fantasydata-client/internal/http/requestutil"
	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/providers"
)

// AdminHandler exposes admin-only endpoints (fixture recording).
type AdminHandler struct {
	writer  *fixtures.Writer
	fetcher providers.Fetcher
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *fixtures.Writer, fetcher providers.Fetcher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:  writer,
		fetcher: fetcher,
		token:   token,
		logger:  logger,
	}
}

// RecordStandings fetches standings for the season query parameter and writes
// them as a fixture. Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RecordStandings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.fetcher == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "fixture recording not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	season := strings.TrimSpace(r.URL.Query().Get(SeasonParam))
	if !seasonPattern.MatchString(season) {
		logging.Warn(logger, "admin record invalid season", slog.String(logging.FieldSeason, season))
		writeError(w, r, http.StatusBadRequest, "invalid season (expected e.g. 2013REG)", logger)
		return
	}

	rec, err := providers.Record(r.Context(), h.fetcher, h.writer, fantasydata.ResourceStandings, season)
	if err != nil {
		logging.Warn(logger, "admin record failed", slog.String(logging.FieldSeason, season), slog.Any(logging.FieldError, err))
		if sErr, ok := fantasydata.AsStatusError(err); ok {
			writeErrorBody(w, r, http.StatusBadGateway, ErrorResponse{
				Error: fmt.Sprintf("upstream returned %d", sErr.StatusCode),
				Kind:  KindUpstream,
			}, logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to record fixture", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"season": season,
		"path":   rec.Path,
		"bytes":  len(rec.Body),
		"status": "ok",
	}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
