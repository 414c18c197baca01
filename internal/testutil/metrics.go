package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/fantasydata-client/internal/metrics"
)

// NewRecorderWithShutdown returns an in-memory recorder and a no-op shutdown.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

// AssertUpstream checks the recorded attempts, errors and retries for resource.
func AssertUpstream(t *testing.T, rec *metrics.Recorder, resource string, calls, errs, retries int) {
	t.Helper()
	snap := rec.Snapshot(resource)
	if snap.Calls != calls || snap.Errors != errs || snap.Retries != retries {
		t.Fatalf("%s: expected calls=%d errors=%d retries=%d, got %+v", resource, calls, errs, retries, snap)
	}
}
