package grpcapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kelmensah/afcon-data/internal/broadcast"
	"github.com/kelmensah/afcon-data/internal/cache"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/pb"
)

type fakeUpstream struct {
	mu          sync.Mutex
	seasonal    []fixture.Data
	live        []fixture.Data
	groups      []fixture.StandingGroup
	err         error
	seasonCalls int
}

func (f *fakeUpstream) FixturesForLeagueSeason(context.Context, int, int) ([]fixture.Data, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seasonCalls++
	return f.seasonal, f.err
}

func (f *fakeUpstream) seasonCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seasonCalls
}

func (f *fakeUpstream) LiveFixtures(context.Context, int) ([]fixture.Data, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live, nil
}

func (f *fakeUpstream) FixtureEvents(context.Context, int) ([]fixture.Event, error) {
	return nil, nil
}

func (f *fakeUpstream) FixtureByID(_ context.Context, id int) (*fixture.Data, error) {
	return nil, fmt.Errorf("fixture %d not found", id)
}

func (f *fakeUpstream) Standings(context.Context, int, int) ([]fixture.StandingGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.groups, f.err
}

type fakeRepo struct {
	mu       sync.Mutex
	upserted int
	batchErr error
	byDate   []fixture.Data
	dateErr  error
}

func (r *fakeRepo) UpsertBatch(_ context.Context, fixtures []fixture.Data, _, _ int, _ string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserted += len(fixtures)
	if r.batchErr != nil {
		return len(fixtures) - 1, r.batchErr
	}
	return len(fixtures), nil
}

func (r *fakeRepo) FixturesForDate(context.Context, int, int, time.Time) ([]fixture.Data, error) {
	return r.byDate, r.dateErr
}

// Store side of the broadcaster; unused by the unary RPC tests.
func (r *fakeRepo) Upsert(context.Context, fixture.Data, int, int, string) error { return nil }
func (r *fakeRepo) NextUpcomingKickoff(context.Context, int, int) (*time.Time, error) {
	return nil, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newTestServer(t *testing.T, up *fakeUpstream, repo *fakeRepo, store cache.Store) *Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if store == nil {
		mem := cache.NewMemory()
		t.Cleanup(func() { mem.Close() })
		store = mem
	}
	b := broadcast.New(ctx, up, repo, quietLogger(), broadcast.Options{
		Intervals: broadcast.Intervals{
			Live: 10 * time.Millisecond, Near: 10 * time.Millisecond,
			Hour: 10 * time.Millisecond, SixHour: 10 * time.Millisecond,
			Far: 10 * time.Millisecond, Unknown: 10 * time.Millisecond,
		},
	})
	return NewServer(b, repo, up, store, quietLogger())
}

func TestSyncFixtures(t *testing.T) {
	kickoff := time.Date(2025, 12, 21, 17, 0, 0, 0, time.UTC)
	up := &fakeUpstream{seasonal: []fixture.Data{
		{ID: 1, Kickoff: kickoff, StatusShort: fixture.StatusNotStarted},
		{ID: 2, Kickoff: kickoff, StatusShort: fixture.StatusNotStarted},
	}}
	repo := &fakeRepo{}
	s := newTestServer(t, up, repo, nil)

	resp, err := s.SyncFixtures(context.Background(), &pb.SyncFixturesRequest{
		LeagueId: 6, Season: 2025, Competition: "AFCON",
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	require.Equal(t, int32(2), resp.GetFixturesSynced())
}

func TestSyncFixturesUpstreamFailure(t *testing.T) {
	up := &fakeUpstream{err: fmt.Errorf("quota exceeded")}
	s := newTestServer(t, up, &fakeRepo{}, nil)

	_, err := s.SyncFixtures(context.Background(), &pb.SyncFixturesRequest{LeagueId: 6, Season: 2025})
	require.Error(t, err)
	require.Equal(t, codes.Unavailable, status.Code(err))
}

func TestSyncFixturesPartialFailure(t *testing.T) {
	up := &fakeUpstream{seasonal: []fixture.Data{{ID: 1}, {ID: 2}}}
	repo := &fakeRepo{batchErr: fmt.Errorf("conflict on fixture 2")}
	s := newTestServer(t, up, repo, nil)

	resp, err := s.SyncFixtures(context.Background(), &pb.SyncFixturesRequest{LeagueId: 6, Season: 2025})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, int32(1), resp.GetFixturesSynced())
	require.Contains(t, resp.GetMessage(), "partial sync")
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t, &fakeUpstream{}, &fakeRepo{}, nil)
	ctx := context.Background()

	_, err := s.SyncFixtures(ctx, &pb.SyncFixturesRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetStandings(ctx, &pb.StandingsRequest{LeagueId: 6})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetFixturesByDate(ctx, &pb.FixturesByDateRequest{
		LeagueId: 6, Season: 2025, Date: "21-12-2025",
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetFixturesByDateFromUpstream(t *testing.T) {
	day := time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)
	up := &fakeUpstream{seasonal: []fixture.Data{
		{ID: 8, LeagueID: 6, Season: 2025, Kickoff: day.Add(20 * time.Hour),
			StatusShort: fixture.StatusNotStarted,
			Home:        fixture.Team{Name: "Senegal"}, Away: fixture.Team{Name: "Morocco"}},
		{ID: 7, LeagueID: 6, Season: 2025, Kickoff: day.Add(17 * time.Hour),
			StatusShort: fixture.StatusNotStarted,
			Home:        fixture.Team{Name: "Nigeria"}, Away: fixture.Team{Name: "Egypt"}},
		{ID: 9, LeagueID: 6, Season: 2025, Kickoff: day.Add(36 * time.Hour),
			StatusShort: fixture.StatusNotStarted},
	}}
	repo := &fakeRepo{}
	mem := cache.NewMemory()
	defer mem.Close()
	s := newTestServer(t, up, repo, mem)

	resp, err := s.GetFixturesByDate(context.Background(), &pb.FixturesByDateRequest{
		LeagueId: 6, Season: 2025, Date: "2025-12-21",
	})
	require.NoError(t, err)

	// Only the requested day's fixtures, ascending by kickoff.
	require.Len(t, resp.GetFixtures(), 2)
	require.Equal(t, int32(7), resp.GetFixtures()[0].GetId())
	require.Equal(t, int32(8), resp.GetFixtures()[1].GetId())

	// The full season fetch was persisted on the way.
	repo.mu.Lock()
	require.Equal(t, 3, repo.upserted)
	repo.mu.Unlock()

	// Result is now cached.
	key := fmt.Sprintf(cache.KeyFixturesDateFmt, 6, 2025, "2025-12-21")
	_, ok, err := mem.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGetFixturesByDateRepoFailureStillServesUpstream(t *testing.T) {
	kickoff := time.Date(2025, 12, 21, 17, 0, 0, 0, time.UTC)
	up := &fakeUpstream{seasonal: []fixture.Data{
		{ID: 9, LeagueID: 6, Season: 2025, Kickoff: kickoff, StatusShort: fixture.StatusNotStarted},
	}}
	repo := &fakeRepo{dateErr: fmt.Errorf("connection refused"), batchErr: fmt.Errorf("connection refused")}
	s := newTestServer(t, up, repo, nil)

	resp, err := s.GetFixturesByDate(context.Background(), &pb.FixturesByDateRequest{
		LeagueId: 6, Season: 2025, Date: "2025-12-21",
	})
	require.NoError(t, err)
	require.Len(t, resp.GetFixtures(), 1)
	require.Equal(t, int32(9), resp.GetFixtures()[0].GetId())
	require.Equal(t, 1, up.seasonCallCount())
}

func TestGetFixturesByDateFallsBackToRepo(t *testing.T) {
	kickoff := time.Date(2025, 12, 21, 17, 0, 0, 0, time.UTC)
	up := &fakeUpstream{err: fmt.Errorf("quota exceeded")}
	repo := &fakeRepo{byDate: []fixture.Data{{
		ID: 7, LeagueID: 6, Season: 2025, Kickoff: kickoff,
		StatusShort: fixture.StatusNotStarted,
		Home:        fixture.Team{Name: "Nigeria"},
		Away:        fixture.Team{Name: "Egypt"},
	}}}
	s := newTestServer(t, up, repo, nil)

	resp, err := s.GetFixturesByDate(context.Background(), &pb.FixturesByDateRequest{
		LeagueId: 6, Season: 2025, Date: "2025-12-21",
	})
	require.NoError(t, err)
	require.Len(t, resp.GetFixtures(), 1)
	require.Equal(t, int32(7), resp.GetFixtures()[0].GetId())
	require.Equal(t, kickoff.Unix(), resp.GetFixtures()[0].GetKickoffUnix())
}

func TestGetFixturesByDateBothSourcesDown(t *testing.T) {
	up := &fakeUpstream{err: fmt.Errorf("quota exceeded")}
	repo := &fakeRepo{dateErr: fmt.Errorf("connection refused")}
	s := newTestServer(t, up, repo, nil)

	_, err := s.GetFixturesByDate(context.Background(), &pb.FixturesByDateRequest{
		LeagueId: 6, Season: 2025, Date: "2025-12-21",
	})
	require.Equal(t, codes.Unavailable, status.Code(err))
}

func TestGetStandingsCacheHit(t *testing.T) {
	mem := cache.NewMemory()
	defer mem.Close()

	groups := []fixture.StandingGroup{{Name: "Group A", Rows: []fixture.StandingRow{
		{Rank: 1, Team: fixture.Team{Name: "Nigeria"}, Points: 9},
	}}}
	data, err := json.Marshal(groups)
	require.NoError(t, err)
	key := fmt.Sprintf(cache.KeyStandingsFmt, 6, 2025)
	require.NoError(t, mem.Set(context.Background(), key, data, time.Minute))

	up := &fakeUpstream{err: fmt.Errorf("must not be called")}
	s := newTestServer(t, up, &fakeRepo{}, mem)

	resp, err := s.GetStandings(context.Background(), &pb.StandingsRequest{LeagueId: 6, Season: 2025})
	require.NoError(t, err)
	require.Len(t, resp.GetGroups(), 1)
	require.Equal(t, "Group A", resp.GetGroups()[0].GetName())
	require.Equal(t, "Nigeria", resp.GetGroups()[0].GetRows()[0].GetTeam().GetName())
}

func TestGetStandingsFallsBackToUpstream(t *testing.T) {
	up := &fakeUpstream{groups: []fixture.StandingGroup{{Name: "Group B"}}}
	mem := cache.NewMemory()
	defer mem.Close()
	s := newTestServer(t, up, &fakeRepo{}, mem)

	resp, err := s.GetStandings(context.Background(), &pb.StandingsRequest{LeagueId: 6, Season: 2025})
	require.NoError(t, err)
	require.Equal(t, "Group B", resp.GetGroups()[0].GetName())

	// Fetched table is cached for the next call.
	key := fmt.Sprintf(cache.KeyStandingsFmt, 6, 2025)
	_, ok, err := mem.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
}

// fakeLiveStream satisfies pb.AFCON_StreamLiveMatchesServer for tests.
type fakeLiveStream struct {
	grpc.ServerStream
	ctx context.Context

	mu  sync.Mutex
	got []*pb.LiveMatchUpdate
}

func (s *fakeLiveStream) Context() context.Context { return s.ctx }

func (s *fakeLiveStream) Send(u *pb.LiveMatchUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, u)
	return nil
}

func (s *fakeLiveStream) updates() []*pb.LiveMatchUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*pb.LiveMatchUpdate, len(s.got))
	copy(out, s.got)
	return out
}

func TestStreamLiveMatches(t *testing.T) {
	elapsed, goals := 10, 0
	up := &fakeUpstream{}
	up.live = []fixture.Data{{
		ID: 500, LeagueID: 6, Season: 2025,
		StatusShort: fixture.StatusFirstHalf,
		Elapsed:     &elapsed,
		HomeGoals:   &goals, AwayGoals: &goals,
		Home: fixture.Team{Name: "Nigeria"}, Away: fixture.Team{Name: "Egypt"},
	}}
	s := newTestServer(t, up, &fakeRepo{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeLiveStream{ctx: ctx}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.StreamLiveMatches(&pb.LiveMatchRequest{LeagueId: 6, Season: 2025}, stream)
	}()

	require.Eventually(t, func() bool {
		return len(stream.updates()) >= 1
	}, 5*time.Second, 10*time.Millisecond)

	first := stream.updates()[0]
	require.Equal(t, "match_started", first.GetEventType())
	require.Equal(t, int32(500), first.GetFixtureId())
	require.Equal(t, "Nigeria", first.GetFixture().GetHome().GetName())
	require.NotZero(t, first.GetEmittedAtUnixMs())

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not end after context cancellation")
	}
}

func TestStreamLiveMatchesValidation(t *testing.T) {
	s := newTestServer(t, &fakeUpstream{}, &fakeRepo{}, nil)
	stream := &fakeLiveStream{ctx: context.Background()}

	err := s.StreamLiveMatches(&pb.LiveMatchRequest{}, stream)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
