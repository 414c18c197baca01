package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls            int
	errors           int
	retries          int
	schemaMismatches int
	lastBackoff      time.Duration
	lastCallLatency  time.Duration
}

// Recorder captures in-memory metrics about upstream calls per resource and
// mirrors them into OpenTelemetry instruments when those are configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*upstreamStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamAttempt counts one call for resource and stores its latency.
func (r *Recorder) RecordUpstreamAttempt(resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(resource, func(s *upstreamStats) {
		s.calls++
		s.lastCallLatency = duration
		if err != nil {
			s.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordUpstreamAttempt(resource, duration, err)
	}
}

// RecordRetry tracks that a failed call for resource will be retried after wait.
func (r *Recorder) RecordRetry(resource string, wait time.Duration) {
	if r == nil {
		return
	}

	r.update(resource, func(s *upstreamStats) {
		s.retries++
		if wait > 0 {
			s.lastBackoff = wait
		}
	})
	if r.otel != nil {
		r.otel.recordRetry(resource, wait)
	}
}

// RecordSchemaMismatch tracks a response for resource whose shape did not match.
func (r *Recorder) RecordSchemaMismatch(resource string) {
	if r == nil {
		return
	}

	r.update(resource, func(s *upstreamStats) { s.schemaMismatches++ })
	if r.otel != nil {
		r.otel.recordSchemaMismatch(resource)
	}
}

// UpstreamCalls returns the total attempts recorded for a resource.
func (r *Recorder) UpstreamCalls(resource string) int {
	return r.Snapshot(resource).Calls
}

// UpstreamErrors returns the total failed attempts recorded for a resource.
func (r *Recorder) UpstreamErrors(resource string) int {
	return r.Snapshot(resource).Errors
}

// SchemaMismatches returns how many responses for a resource failed validation.
func (r *Recorder) SchemaMismatches(resource string) int {
	return r.Snapshot(resource).SchemaMismatches
}

// Snapshot is a copy of the current stats for a resource.
type Snapshot struct {
	Calls            int
	Errors           int
	Retries          int
	SchemaMismatches int
	LastBackoff      time.Duration
	LastCallLatency  time.Duration
}

func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[resource]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:            stats.calls,
		Errors:           stats.errors,
		Retries:          stats.retries,
		SchemaMismatches: stats.schemaMismatches,
		LastBackoff:      stats.lastBackoff,
		LastCallLatency:  stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordWatchCycle tracks background schema check cycles and their failures.
func (r *Recorder) RecordWatchCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWatchCycle(duration, err)
}

func (r *Recorder) update(resource string, fn func(*upstreamStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[resource]
	if !ok {
		stats = &upstreamStats{}
		r.stats[resource] = stats
	}
	fn(stats)
}
