package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/providers"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// StubProvider returns canned records and report, or Err.
type StubProvider struct {
	mu      sync.Mutex
	Records []fantasydata.Standing
	Report  schema.Report
	Err     error
	seasons []string
}

var _ providers.StandingsProvider = (*StubProvider)(nil)

func (p *StubProvider) Standings(ctx context.Context, season string) ([]fantasydata.Standing, error) {
	p.record(season)
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Records, nil
}

func (p *StubProvider) CheckStandings(ctx context.Context, season string, teams int) (schema.Report, error) {
	p.record(season)
	return p.Report, p.Err
}

// Seasons returns the season codes requested so far.
func (p *StubProvider) Seasons() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.seasons...)
}

func (p *StubProvider) record(season string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seasons = append(p.seasons, season)
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) Standings(ctx context.Context, season string) ([]fantasydata.Standing, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) CheckStandings(ctx context.Context, season string, teams int) (schema.Report, error) {
	return schema.Report{}, providers.ErrProviderUnavailable
}
