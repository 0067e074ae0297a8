// Package upstream provides the typed contract to the external fixture
// provider (API-Football v3) and its HTTP implementation.
//
// The provider uses header auth and a per-key request quota. Rate limiting
// is handled via a token bucket limiter; callers receive already-decoded
// domain values and never see the JSON shape.
package upstream

import (
	"context"

	"github.com/kelmensah/afcon-data/internal/fixture"
)

// Client is the upstream provider contract. Implementations are safe for
// concurrent use by the broadcaster pollers and the standings refreshers.
type Client interface {
	// FixturesForLeagueSeason returns every fixture of a league season.
	// Used for the initial sync and schedule rebuilds.
	FixturesForLeagueSeason(ctx context.Context, leagueID, season int) ([]fixture.Data, error)

	// LiveFixtures returns only currently in-progress fixtures for a league.
	LiveFixtures(ctx context.Context, leagueID int) ([]fixture.Data, error)

	// FixtureEvents returns the in-match events observed so far for one
	// fixture.
	FixtureEvents(ctx context.Context, fixtureID int) ([]fixture.Event, error)

	// FixtureByID returns the current snapshot of one fixture. Used to
	// capture the final state when a fixture leaves the live set.
	FixtureByID(ctx context.Context, fixtureID int) (*fixture.Data, error)

	// Standings returns the league table(s) for a league season.
	Standings(ctx context.Context, leagueID, season int) ([]fixture.StandingGroup, error)
}
