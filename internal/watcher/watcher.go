package watcher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/metrics"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

const defaultInterval = time.Hour

// Checker validates the standings of a season.
type Checker interface {
	CheckStandings(ctx context.Context, season string, teams int) (schema.Report, error)
}

// Watcher re-checks a fixed list of seasons on an interval so schema drift in
// the upstream service is noticed without a caller asking.
type Watcher struct {
	checker  Checker
	seasons  []string
	teams    int
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the outcome of recent check cycles.
type Status struct {
	Seasons             []string                 `json:"seasons"`
	ConsecutiveFailures int                      `json:"consecutive_failures"`
	Drift               bool                     `json:"drift"`
	LastError           string                   `json:"last_error,omitempty"`
	LastAttempt         time.Time                `json:"last_attempt"`
	LastSuccess         time.Time                `json:"last_success"`
	Reports             map[string]schema.Report `json:"reports,omitempty"`
}

// IsReady reports whether a cycle has passed recently and failures are not piling up.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Watcher. A non-positive interval uses one hour.
func New(checker Checker, seasons []string, teams int, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Watcher{
		checker:  checker,
		seasons:  append([]string(nil), seasons...),
		teams:    teams,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		status:   Status{Seasons: append([]string(nil), seasons...)},
	}
}

// Start runs a check immediately and then on every tick until ctx is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		logging.Info(w.logger, "watcher started",
			slog.Any("seasons", w.seasons),
			slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()),
		)
		w.checkOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				logging.Info(w.logger, "watcher stopped")
				return
			case <-w.done:
				w.stopTicker()
				logging.Info(w.logger, "watcher stopped")
				return
			case <-w.ticker.C:
				w.checkOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop. It is safe to call more than once.
func (w *Watcher) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

func (w *Watcher) checkOnce(ctx context.Context) {
	start := w.now()
	reports := make(map[string]schema.Report, len(w.seasons))
	var errs []error
	drift := false

	for _, season := range w.seasons {
		report, err := w.checker.CheckStandings(ctx, season, w.teams)
		reports[season] = report
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if schema.IsMismatch(err) {
			drift = true
			logging.Warn(w.logger, "schema drift detected",
				slog.String(logging.FieldSeason, season),
				slog.Any("missing", report.Missing),
				slog.Any("extra", report.Extra),
				slog.Any(logging.FieldError, err),
			)
			continue
		}
		logging.Error(w.logger, "standings check failed", err, slog.String(logging.FieldSeason, season))
	}

	err := errors.Join(errs...)
	w.metrics.RecordWatchCycle(w.now().Sub(start), err)
	w.record(start, reports, drift, err)
	if err == nil {
		logging.Info(w.logger, "standings checks passed",
			logging.FieldCount, len(w.seasons),
			logging.FieldDurationMS, w.now().Sub(start).Milliseconds(),
		)
	}
}

func (w *Watcher) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Watcher) record(at time.Time, reports map[string]schema.Report, drift bool, err error) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
	w.status.Reports = reports
	w.status.Drift = drift
	if err != nil {
		w.status.ConsecutiveFailures++
		w.status.LastError = err.Error()
		return
	}
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

// Status returns a copy of the most recent cycle's outcome.
func (w *Watcher) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	out := w.status
	out.Seasons = append([]string(nil), w.status.Seasons...)
	if w.status.Reports != nil {
		out.Reports = make(map[string]schema.Report, len(w.status.Reports))
		for k, v := range w.status.Reports {
			out.Reports[k] = v
		}
	}
	return out
}
