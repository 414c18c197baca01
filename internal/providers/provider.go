package providers

import (
	"context"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// StandingsProvider fetches team standings for a season code such as 2013REG.
// *fantasydata.Client satisfies it whether it talks to the live service or to
// recorded fixtures.
type StandingsProvider interface {
	Standings(ctx context.Context, season string) ([]fantasydata.Standing, error)
	CheckStandings(ctx context.Context, season string, teams int) (schema.Report, error)
}

var _ StandingsProvider = (*fantasydata.Client)(nil)
