// Package seed performs the one-time initial fixture sync on startup.
// The gate is the repository itself: a league-season with rows present is
// never re-synced, so restarts cost no upstream quota.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kelmensah/afcon-data/internal/config"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/upstream"
)

// Result summarizes one league-season seed pass.
type Result struct {
	LeagueID int
	Season   int
	Skipped  bool
	Synced   int
	Errors   []string
}

func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Store is the slice of the fixture repository seeding needs.
type Store interface {
	HasFixtures(ctx context.Context, leagueID, season int) (bool, error)
	UpsertBatch(ctx context.Context, fixtures []fixture.Data, leagueID, season int, competition string) (int, error)
}

// Run seeds every configured league that has no fixtures yet. Individual
// league failures are recorded per result and do not abort the pass.
func Run(ctx context.Context, client upstream.Client, store Store, leagues []config.League, logger *slog.Logger) []Result {
	results := make([]Result, 0, len(leagues))
	for _, lg := range leagues {
		results = append(results, seedLeague(ctx, client, store, lg, logger))
	}
	return results
}

func seedLeague(ctx context.Context, client upstream.Client, store Store, lg config.League, logger *slog.Logger) Result {
	result := Result{LeagueID: lg.ID, Season: lg.Season}

	has, err := store.HasFixtures(ctx, lg.ID, lg.Season)
	if err != nil {
		result.AddErrorf("seed gate check: %v", err)
		return result
	}
	if has {
		result.Skipped = true
		logger.Info("Seed skipped, fixtures already present",
			"league_id", lg.ID, "season", lg.Season)
		return result
	}

	logger.Info("Seeding fixtures", "league_id", lg.ID, "season", lg.Season, "name", lg.Name)
	fixtures, err := client.FixturesForLeagueSeason(ctx, lg.ID, lg.Season)
	if err != nil {
		result.AddErrorf("fetch fixtures: %v", err)
		return result
	}

	synced, err := store.UpsertBatch(ctx, fixtures, lg.ID, lg.Season, lg.Name)
	result.Synced = synced
	if err != nil {
		result.AddErrorf("upsert batch: %v", err)
	}
	logger.Info("Seed done",
		"league_id", lg.ID, "season", lg.Season,
		"fetched", len(fixtures), "synced", synced, "errors", len(result.Errors))
	return result
}
