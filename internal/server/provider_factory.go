package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fantasydata-client/internal/config"
	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
	"github.com/preston-bernstein/fantasydata-client/internal/metrics"
	"github.com/preston-bernstein/fantasydata-client/internal/providers"
	"github.com/preston-bernstein/fantasydata-client/internal/providers/fixture"
)

// providerFactory assembles the client and wraps it with retries.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the retrying provider and the bare client behind it.
func (f providerFactory) build(cfg config.Config) (providers.StandingsProvider, *fantasydata.Client) {
	client := NewClient(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider)
	return providers.NewRetryingProvider(client, f.logger, f.metrics, name, cfg.Retry.Attempts, cfg.Retry.Backoff), client
}

// ClientConfig maps the environment onto a client configuration.
func ClientConfig(cfg config.Config, logger *slog.Logger) fantasydata.Config {
	mode := fantasydata.DecodeStrict
	if !cfg.FantasyData.Strict {
		mode = fantasydata.DecodeLenient
	}
	return fantasydata.Config{
		BaseURL:      cfg.FantasyData.BaseURL,
		APIKey:       cfg.FantasyData.APIKey,
		Subscription: fantasydata.Subscription(cfg.FantasyData.Subscription),
		Format:       fantasydata.Format(cfg.FantasyData.Format),
		HTTPClient:   &http.Client{Timeout: cfg.FantasyData.Timeout},
		Logger:       logger,
		Mode:         mode,
	}
}

// NewClient returns a live client or one replaying recorded fixtures.
func NewClient(cfg config.Config, logger *slog.Logger) *fantasydata.Client {
	clientCfg := ClientConfig(cfg, logger)
	switch normalizeProviderName(cfg.Provider) {
	case config.ProviderLive:
		if cfg.FantasyData.APIKey == "" && logger != nil {
			logger.Warn("live provider configured without an api key")
		}
		return fantasydata.NewClient(clientCfg)
	default:
		if cfg.Provider != "" && cfg.Provider != config.ProviderFixture && logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(fixtures.NewDirStore(cfg.Fixtures.Dir), clientCfg, logger)
	}
}
