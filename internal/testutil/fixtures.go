package testutil

import (
	"encoding/json"
	"testing"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
)

// RecordedStandingsPath is the request path of the embedded 2013 regular season recording.
const RecordedStandingsPath = "/developer/json/Standings/2013REG"

// SampleStanding returns a minimal standing for team.
func SampleStanding(team string) fantasydata.Standing {
	return fantasydata.Standing{
		SeasonType: 1,
		Season:     2013,
		Conference: "AFC",
		Division:   "East",
		Team:       team,
		Name:       team,
		Wins:       8,
		Losses:     8,
		Percentage: 0.5,
	}
}

// RecordedStandingsBody returns the embedded 2013REG payload.
func RecordedStandingsBody(t testing.TB) []byte {
	t.Helper()
	body, err := fixtures.NewStore(fixtures.Embedded()).Load(RecordedStandingsPath)
	if err != nil {
		t.Fatalf("failed to load recorded standings: %v", err)
	}
	return body
}

// MutateStandings decodes the recorded payload as generic records, applies fn
// to each, and returns the re-encoded body.
func MutateStandings(t testing.TB, fn func(i int, rec map[string]any)) []byte {
	t.Helper()
	var recs []map[string]any
	if err := json.Unmarshal(RecordedStandingsBody(t), &recs); err != nil {
		t.Fatalf("failed to decode recorded standings: %v", err)
	}
	for i := range recs {
		fn(i, recs[i])
	}
	out, err := json.Marshal(recs)
	if err != nil {
		t.Fatalf("failed to encode standings: %v", err)
	}
	return out
}
