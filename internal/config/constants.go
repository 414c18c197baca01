package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envAdminToken      = "ADMIN_TOKEN"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelVersion     = "OTEL_SERVICE_VERSION"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	envFdBaseURL       = "FANTASY_DATA_BASE_URL"
	envFdAPIKey        = "FANTASY_DATA_API_KEY"
	envFdSubscription  = "FANTASY_DATA_SUBSCRIPTION"
	envFdFormat        = "FANTASY_DATA_FORMAT"
	envFdTimeout       = "FANTASY_DATA_TIMEOUT"
	envFdExpectedTeams = "FANTASY_DATA_EXPECTED_TEAMS"
	envFdStrict        = "FANTASY_DATA_STRICT"
	envRetryAttempts   = "FANTASY_DATA_RETRY_ATTEMPTS"
	envRetryBackoff    = "FANTASY_DATA_RETRY_BACKOFF"
	envFixturesDir     = "FIXTURES_DIR"
	envWatchSeasons    = "WATCH_SEASONS"
	envWatchInterval   = "WATCH_INTERVAL"

	defaultPort            = "4000"
	defaultProvider        = ProviderFixture
	defaultShutdownTimeout = 10 * Duration(time.Second)
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "fantasydata-service"

	defaultFdBaseURL       = "http://api.nfldata.apiphany.com"
	defaultFdSubscription  = "developer"
	defaultFdFormat        = "json"
	defaultFdTimeout       = 10 * Duration(time.Second)
	defaultFdExpectedTeams = 32
	defaultFdStrict        = true
	// Upstream calls are cheap to repeat but the developer tier is quota-limited.
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * Duration(time.Millisecond)
	defaultRecordDir     = "fixtures"
	defaultWatchInterval = Duration(time.Hour)
)

// Provider names accepted in PROVIDER.
const (
	ProviderFixture = "fixture"
	ProviderLive    = "live"
)
