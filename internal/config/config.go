package config

// Config holds runtime configuration for the CLI and the server.
type Config struct {
	Port            string
	Provider        string
	ShutdownTimeout Duration
	AdminToken      string // enables the fixture recording endpoint when set
	FantasyData     FantasyDataConfig
	Retry           RetryConfig
	Fixtures        FixturesConfig
	Metrics         MetricsConfig
	Watch           WatchConfig
	Log             LogConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Provider:        envOrDefault(envProvider, defaultProvider),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		AdminToken:      envOrDefault(envAdminToken, ""),
		FantasyData:     loadFantasyData(),
		Retry:           loadRetry(),
		Fixtures:        loadFixtures(),
		Metrics:         loadMetrics(),
		Watch:           loadWatch(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
