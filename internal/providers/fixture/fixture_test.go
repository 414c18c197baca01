package fixture

import (
	"context"
	"testing"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
)

func TestNewServesEmbeddedStandings(t *testing.T) {
	client := New(nil, fantasydata.Config{APIKey: "000aaaa0-a00a-0000-0a0a-aa0a00000000"}, nil)

	standings, err := client.Standings(context.Background(), "2013REG")
	if err != nil {
		t.Fatalf("expected recorded standings, got %v", err)
	}
	if len(standings) != 32 {
		t.Fatalf("expected 32 teams, got %d", len(standings))
	}

	last, ok := client.History().Last()
	if !ok || last.URL.Path != "/developer/json/Standings/2013REG" {
		t.Fatalf("unexpected exchange %+v", last)
	}
}

func TestNewMissingRecordingIsStatusError(t *testing.T) {
	client := New(fixtures.NewStore(fixtures.Embedded()), fantasydata.Config{Subscription: fantasydata.SubscriptionTrial}, nil)

	_, err := client.Standings(context.Background(), "2013REG")
	sErr, ok := fantasydata.AsStatusError(err)
	if !ok || sErr.StatusCode != 404 {
		t.Fatalf("expected 404 status error, got %v", err)
	}
}

func TestNewIgnoresBaseURLPath(t *testing.T) {
	client := New(nil, fantasydata.Config{BaseURL: "http://api.nfldata.apiphany.com/v3/nfl", APIKey: "k"}, nil)

	standings, err := client.Standings(context.Background(), "2013REG")
	if err != nil {
		t.Fatalf("expected recorded standings behind a base path, got %v", err)
	}
	if len(standings) != 32 {
		t.Fatalf("expected 32 teams, got %d", len(standings))
	}

	last, ok := client.History().Last()
	if !ok || last.URL.Path != "/v3/nfl/developer/json/Standings/2013REG" {
		t.Fatalf("expected the base path on the wire, got %+v", last)
	}
}
