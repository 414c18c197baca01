package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/fantasydata-client/internal/config"
	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/metrics"
	"github.com/preston-bernstein/fantasydata-client/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics listener on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsListener(t *testing.T) {
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: false},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics listener when disabled")
	}
}

func TestServerRecordsUpstreamAttemptsOnInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := config.Config{Provider: config.ProviderFixture}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{Err: &fantasydata.StatusError{StatusCode: 404}}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/standings/1999REG", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	testutil.AssertUpstream(t, rec, fantasydata.ResourceStandings, 1, 1, 0)
}
