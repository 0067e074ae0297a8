package seed

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelmensah/afcon-data/internal/config"
	"github.com/kelmensah/afcon-data/internal/fixture"
)

type fakeStore struct {
	has      map[string]bool
	upserted map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{has: make(map[string]bool), upserted: make(map[string]int)}
}

func key(leagueID, season int) string { return fmt.Sprintf("%d:%d", leagueID, season) }

func (s *fakeStore) HasFixtures(_ context.Context, leagueID, season int) (bool, error) {
	return s.has[key(leagueID, season)], nil
}

func (s *fakeStore) UpsertBatch(_ context.Context, fixtures []fixture.Data, leagueID, season int, _ string) (int, error) {
	s.upserted[key(leagueID, season)] += len(fixtures)
	return len(fixtures), nil
}

type fakeClient struct {
	fixtures []fixture.Data
	err      error
	calls    int
}

func (c *fakeClient) FixturesForLeagueSeason(context.Context, int, int) ([]fixture.Data, error) {
	c.calls++
	return c.fixtures, c.err
}
func (c *fakeClient) LiveFixtures(context.Context, int) ([]fixture.Data, error)   { return nil, nil }
func (c *fakeClient) FixtureEvents(context.Context, int) ([]fixture.Event, error) { return nil, nil }
func (c *fakeClient) FixtureByID(context.Context, int) (*fixture.Data, error)     { return nil, nil }
func (c *fakeClient) Standings(context.Context, int, int) ([]fixture.StandingGroup, error) {
	return nil, nil
}

func TestRunSeedsEmptyLeagues(t *testing.T) {
	store := newFakeStore()
	client := &fakeClient{fixtures: []fixture.Data{{ID: 1}, {ID: 2}, {ID: 3}}}
	leagues := []config.League{{ID: 6, Season: 2025, Name: "AFCON"}}

	results := Run(context.Background(), client, store, leagues, slog.Default())
	require.Len(t, results, 1)
	require.False(t, results[0].Skipped)
	require.Equal(t, 3, results[0].Synced)
	require.Empty(t, results[0].Errors)
	require.Equal(t, 3, store.upserted["6:2025"])
}

func TestRunSkipsSeededLeagues(t *testing.T) {
	store := newFakeStore()
	store.has["6:2025"] = true
	client := &fakeClient{fixtures: []fixture.Data{{ID: 1}}}
	leagues := []config.League{{ID: 6, Season: 2025}}

	results := Run(context.Background(), client, store, leagues, slog.Default())
	require.True(t, results[0].Skipped)
	require.Zero(t, client.calls, "no upstream quota burned on restart")
	require.Zero(t, store.upserted["6:2025"])
}

func TestRunRecordsFetchErrorPerLeague(t *testing.T) {
	store := newFakeStore()
	client := &fakeClient{err: fmt.Errorf("quota exceeded")}
	leagues := []config.League{
		{ID: 6, Season: 2025},
		{ID: 39, Season: 2025},
	}

	results := Run(context.Background(), client, store, leagues, slog.Default())
	require.Len(t, results, 2)
	for _, res := range results {
		require.Len(t, res.Errors, 1)
		require.Contains(t, res.Errors[0], "quota exceeded")
	}
}
