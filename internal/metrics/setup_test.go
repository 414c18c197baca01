package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExportsUpstreamMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:        true,
		ServiceName:    "fantasydata-test",
		ServiceVersion: "v1.2.3",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || handler == nil || shutdown == nil {
		t.Fatalf("expected recorder, handler and shutdown")
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordUpstreamAttempt("Standings", time.Millisecond, errors.New("boom"))
	rec.RecordRetry("Standings", time.Second)
	rec.RecordSchemaMismatch("Standings")
	rec.RecordWatchCycle(time.Millisecond, errors.New("drift"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rr.Body)
	out := string(body)

	for _, want := range []string{"upstream_attempts_total", "schema_mismatches_total", "watch_failures_total", `resource="Standings"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in scrape output, got:\n%s", want, out)
		}
	}
	if rec.UpstreamCalls("Standings") != 1 {
		t.Fatalf("expected in-memory stats alongside otel export")
	}
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failed")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from reader factory")
	}
}

func TestSetupAppliesLatencyBuckets(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	rec.RecordUpstreamAttempt("Standings", 300*time.Millisecond, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := rr.Body.String()
	if !strings.Contains(out, `le="250"`) || strings.Contains(out, `le="750"`) {
		t.Fatalf("expected custom latency buckets, got:\n%s", out)
	}
}

func TestSetupPropagatesOTLPErrors(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		return nil, errors.New("bad endpoint")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"}); err == nil {
		t.Fatalf("expected error from otlp reader factory")
	}
}
