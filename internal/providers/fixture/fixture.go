package fixture

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
)

// Name identifies the fixture provider in logs and metrics.
const Name = "fixture"

// New returns a client that answers from recorded responses instead of the
// network. cfg keeps its subscription, format, key and decode mode so URLs are
// built exactly as they would be against the live service. Any path on the
// base URL is ignored when looking up recordings.
func New(store *fixtures.Store, cfg fantasydata.Config, logger *slog.Logger) *fantasydata.Client {
	if store == nil {
		store = fixtures.NewStore(fixtures.Embedded())
	}
	transport := fixtures.NewTransport(store, logger)
	if base, err := url.Parse(cfg.BaseURL); err == nil {
		transport.StripPrefix(base.EscapedPath())
	}
	cfg.HTTPClient = &http.Client{Transport: transport}
	cfg.Logger = logger
	return fantasydata.NewClient(cfg)
}
