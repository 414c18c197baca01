package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/metrics"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	defaultMaxBackoff    = 5 * time.Second
)

type backoffFactory func() backoff.BackOff

// retryingProvider wraps a StandingsProvider with retry/backoff behavior and
// records every attempt on the metrics recorder.
type retryingProvider struct {
	inner        StandingsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackoff   backoffFactory
	now          func() time.Time
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner StandingsProvider, logger *slog.Logger, rec *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) StandingsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      rec,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackoff:   exponentialBackoff(initial),
		now:          time.Now,
	}
}

func exponentialBackoff(initial time.Duration) backoffFactory {
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = initial
		b.MaxInterval = defaultMaxBackoff
		b.MaxElapsedTime = 0
		b.Reset()
		return b
	}
}

func (r *retryingProvider) Standings(ctx context.Context, season string) ([]fantasydata.Standing, error) {
	var out []fantasydata.Standing
	err := r.do(ctx, fantasydata.ResourceStandings, season, func(ctx context.Context) error {
		standings, err := r.inner.Standings(ctx, season)
		if err != nil {
			return err
		}
		out = standings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retryingProvider) CheckStandings(ctx context.Context, season string, teams int) (schema.Report, error) {
	var report schema.Report
	err := r.do(ctx, fantasydata.ResourceStandings, season, func(ctx context.Context) error {
		var err error
		report, err = r.inner.CheckStandings(ctx, season, teams)
		return err
	})
	return report, err
}

func (r *retryingProvider) do(ctx context.Context, resource, season string, op func(context.Context) error) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}

	attempt := 0
	operation := func() error {
		attempt++
		start := r.now()
		err := op(ctx)
		r.metrics.RecordUpstreamAttempt(resource, r.now().Sub(start), err)
		if err == nil {
			return nil
		}
		if schema.IsMismatch(err) {
			r.metrics.RecordSchemaMismatch(resource)
		}
		if !Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	logger := logging.FromContext(ctx, r.logger)
	notify := func(err error, wait time.Duration) {
		r.metrics.RecordRetry(resource, wait)
		r.logFetch(ctx, logger, "provider fetch retry", resource, season, err,
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("backoff", wait),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackoff(), uint64(r.maxAttempts-1)), ctx)
	err := backoff.RetryNotify(operation, policy, notify)
	if err != nil {
		r.logFetch(ctx, logger, "provider fetch failed", resource, season, err,
			slog.Int("attempts", attempt),
		)
	}
	return err
}
