package server

import (
	"strings"

	"github.com/preston-bernstein/fantasydata-client/internal/config"
)

// normalizeProviderName returns a lower-cased provider name, falling back to
// the fixture provider for unknown values. Used across server wiring and the
// provider factory to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string) string {
	switch name := strings.ToLower(strings.TrimSpace(raw)); name {
	case config.ProviderLive:
		return config.ProviderLive
	default:
		return config.ProviderFixture
	}
}
