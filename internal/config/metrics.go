package config

// MetricsConfig controls the Prometheus listener and optional OTLP push.
type MetricsConfig struct {
	Enabled        bool
	Port           string
	ServiceName    string
	ServiceVersion string
	OtlpEndpoint   string // empty disables OTLP push
	OtlpInsecure   bool
}

// PushEnabled reports whether metrics are also pushed over OTLP/HTTP.
func (c MetricsConfig) PushEnabled() bool {
	return c.Enabled && c.OtlpEndpoint != ""
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:        boolEnvOrDefault(envMetricsOn, true),
		Port:           envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:    envOrDefault(envOtelService, defaultServiceName),
		ServiceVersion: envOrDefault(envOtelVersion, ""),
		OtlpEndpoint:   envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure:   boolEnvOrDefault(envOtelInsecure, true),
	}
}
