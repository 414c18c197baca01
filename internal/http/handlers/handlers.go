package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"regexp"

	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/providers"
)

// SeasonParam is the path wildcard carrying a season code such as 2013REG.
const SeasonParam = "season"

var seasonPattern = regexp.MustCompile(`^[0-9A-Za-z]{1,16}$`)

// Handler serves standings from a provider.
type Handler struct {
	provider providers.StandingsProvider
	teams    int
	logger   *slog.Logger
}

// NewHandler constructs a Handler. teams is the record count a check expects.
func NewHandler(provider providers.StandingsProvider, teams int, logger *slog.Logger) *Handler {
	return &Handler{
		provider: provider,
		teams:    teams,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Standings returns the typed standings for the season in the path.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, ok := h.season(w, r)
	if !ok {
		return
	}

	logger := loggerFromContext(r, h.logger)
	standings, err := h.provider.Standings(r.Context(), season)
	if err != nil {
		logging.Warn(logger, "standings fetch failed", slog.String(logging.FieldSeason, season), slog.Any(logging.FieldError, err))
		writeProviderError(w, r, err, nil, logger)
		return
	}

	logging.Info(logger, "served standings", slog.String(logging.FieldSeason, season), slog.Int(logging.FieldCount, len(standings)))
	writeJSON(w, nethttp.StatusOK, StandingsResponse{Season: season, Standings: standings}, logger)
}

// CheckStandings validates the upstream shape for the season in the path and
// returns the report. Drift answers 502 with the report attached.
func (h *Handler) CheckStandings(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, ok := h.season(w, r)
	if !ok {
		return
	}

	logger := loggerFromContext(r, h.logger)
	report, err := h.provider.CheckStandings(r.Context(), season, h.teams)
	if err != nil {
		logging.Warn(logger, "standings check failed",
			slog.String(logging.FieldSeason, season),
			slog.Int(logging.FieldCount, report.Records),
			slog.Any(logging.FieldError, err),
		)
		writeProviderError(w, r, err, &report, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, logger)
}

func (h *Handler) season(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return "", false
	}
	if h.provider == nil {
		writeProviderError(w, r, providers.ErrProviderUnavailable, nil, h.logger)
		return "", false
	}
	season := r.PathValue(SeasonParam)
	if !seasonPattern.MatchString(season) {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season (expected e.g. 2013REG)", h.logger)
		return "", false
	}
	return season, true
}

var errMethodNotAllowed = errors.New("method not allowed")

func requireMethod(w nethttp.ResponseWriter, r *nethttp.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, nethttp.StatusMethodNotAllowed, errMethodNotAllowed.Error(), logger)
	return false
}
