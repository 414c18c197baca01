package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamAttempt("Standings", 10*time.Millisecond, nil)
	rec.RecordUpstreamAttempt("Standings", 15*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("Standings"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("Standings"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("Standings")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("Schedules"); other != (Snapshot{}) {
		t.Fatalf("expected resources to be tracked separately, got %+v", other)
	}
}

func TestRecorderTracksRetriesAndMismatches(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRetry("Standings", 200*time.Millisecond)
	rec.RecordRetry("Standings", 0)
	rec.RecordSchemaMismatch("Standings")

	snap := rec.Snapshot("Standings")
	if snap.Retries != 2 || snap.LastBackoff != 200*time.Millisecond {
		t.Fatalf("unexpected retry stats %+v", snap)
	}
	if got := rec.SchemaMismatches("Standings"); got != 1 {
		t.Fatalf("expected 1 schema mismatch, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamAttempt("Standings", time.Millisecond, nil)
	rec.RecordRetry("Standings", time.Millisecond)
	rec.RecordSchemaMismatch("Standings")
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordWatchCycle(time.Millisecond, nil)
	if rec.Snapshot("Standings") != (Snapshot{}) {
		t.Fatalf("expected empty snapshot from nil recorder")
	}
}
