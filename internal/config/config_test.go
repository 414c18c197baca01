package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected default provider %s, got %s", ProviderFixture, cfg.Provider)
	}
	fd := cfg.FantasyData
	if fd.BaseURL != defaultFdBaseURL || fd.Subscription != "developer" || fd.Format != "json" {
		t.Fatalf("unexpected fantasydata defaults %+v", fd)
	}
	if fd.APIKey != "" {
		t.Fatalf("expected empty api key by default, got %s", fd.APIKey)
	}
	if fd.ExpectedTeams != 32 || !fd.Strict || fd.Timeout != 10*time.Second {
		t.Fatalf("unexpected fantasydata defaults %+v", fd)
	}
	if cfg.Retry.Attempts != defaultRetryAttempts || cfg.Retry.Backoff != defaultRetryBackoff {
		t.Fatalf("unexpected retry defaults %+v", cfg.Retry)
	}
	if cfg.Fixtures.Dir != "" || cfg.Fixtures.RecordDir() != defaultRecordDir {
		t.Fatalf("unexpected fixtures defaults %+v", cfg.Fixtures)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Watch.Interval != defaultWatchInterval {
		t.Fatalf("unexpected watch interval %s", cfg.Watch.Interval)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, ProviderLive)
	t.Setenv(envFdBaseURL, "http://example.com/api")
	t.Setenv(envFdAPIKey, "secret-key")
	t.Setenv(envFdSubscription, "trial")
	t.Setenv(envFdFormat, "xml")
	t.Setenv(envFdTimeout, "3s")
	t.Setenv(envFdExpectedTeams, "30")
	t.Setenv(envFdStrict, "false")
	t.Setenv(envRetryAttempts, "5")
	t.Setenv(envRetryBackoff, "1s")
	t.Setenv(envFixturesDir, "/tmp/recordings")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" || cfg.Provider != ProviderLive {
		t.Fatalf("unexpected server overrides %+v", cfg)
	}
	fd := cfg.FantasyData
	if fd.BaseURL != "http://example.com/api" || fd.APIKey != "secret-key" {
		t.Fatalf("unexpected fantasydata overrides %+v", fd)
	}
	if fd.Subscription != "trial" || fd.Format != "xml" || fd.Timeout != 3*time.Second {
		t.Fatalf("unexpected fantasydata overrides %+v", fd)
	}
	if fd.ExpectedTeams != 30 || fd.Strict {
		t.Fatalf("unexpected fantasydata overrides %+v", fd)
	}
	if cfg.Retry.Attempts != 5 || cfg.Retry.Backoff != time.Second {
		t.Fatalf("unexpected retry overrides %+v", cfg.Retry)
	}
	if cfg.Fixtures.RecordDir() != "/tmp/recordings" {
		t.Fatalf("expected fixtures dir override, got %s", cfg.Fixtures.RecordDir())
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected log format override, got %s", cfg.Log.Format)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envFdTimeout, "not-a-duration")
	t.Setenv(envRetryBackoff, "0s")
	t.Setenv(envFdExpectedTeams, "-1")

	cfg := Load()

	if cfg.FantasyData.Timeout != defaultFdTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.FantasyData.Timeout)
	}
	if cfg.Retry.Backoff != defaultRetryBackoff {
		t.Fatalf("expected default backoff on non-positive value, got %s", cfg.Retry.Backoff)
	}
	if cfg.FantasyData.ExpectedTeams != defaultFdExpectedTeams {
		t.Fatalf("expected default team count on negative value, got %d", cfg.FantasyData.ExpectedTeams)
	}
}

func TestLoadWatchSeasons(t *testing.T) {
	t.Setenv(envWatchSeasons, "")
	if Load().Watch.Enabled() {
		t.Fatalf("expected watch disabled without seasons")
	}

	t.Setenv(envWatchSeasons, " 2013REG, ,2014REG,")
	t.Setenv(envWatchInterval, "15m")

	w := Load().Watch
	if !w.Enabled() || len(w.Seasons) != 2 || w.Seasons[0] != "2013REG" || w.Seasons[1] != "2014REG" {
		t.Fatalf("unexpected watch seasons %+v", w.Seasons)
	}
	if w.Interval != 15*time.Minute {
		t.Fatalf("expected interval override, got %s", w.Interval)
	}
}

func TestMetricsPushEnabled(t *testing.T) {
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envOtelEndpoint, "")
	if Load().Metrics.PushEnabled() {
		t.Fatalf("expected push disabled without endpoint")
	}

	t.Setenv(envOtelEndpoint, "localhost:4318")
	if !Load().Metrics.PushEnabled() {
		t.Fatalf("expected push enabled with endpoint")
	}

	t.Setenv(envMetricsOn, "off")
	if Load().Metrics.PushEnabled() {
		t.Fatalf("expected push disabled when metrics are off")
	}
}
