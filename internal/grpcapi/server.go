// Package grpcapi exposes the broadcaster and the fixture repository over
// gRPC. StreamLiveMatches is the primary consumer surface; the unary RPCs
// cover sync and read-side queries.
package grpcapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kelmensah/afcon-data/internal/broadcast"
	"github.com/kelmensah/afcon-data/internal/cache"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/pb"
	"github.com/kelmensah/afcon-data/internal/upstream"
)

const (
	fixturesCacheTTL  = 5 * time.Minute
	standingsCacheTTL = time.Hour
)

// Repo is the slice of the fixture repository the service needs.
type Repo interface {
	UpsertBatch(ctx context.Context, fixtures []fixture.Data, leagueID, season int, competition string) (int, error)
	FixturesForDate(ctx context.Context, leagueID, season int, date time.Time) ([]fixture.Data, error)
}

// Server implements the AFCON gRPC service.
type Server struct {
	pb.UnimplementedAFCONServer

	broadcaster *broadcast.Broadcaster
	repo        Repo
	upstream    upstream.Client
	cache       cache.Store
	logger      *slog.Logger
}

func NewServer(b *broadcast.Broadcaster, repo Repo, client upstream.Client, c cache.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		broadcaster: b,
		repo:        repo,
		upstream:    client,
		cache:       c,
		logger:      logger,
	}
}

// StreamLiveMatches registers the caller on the (league, season) topic and
// forwards broadcast updates until the client disconnects. A closed update
// channel means the broadcaster evicted this subscriber for falling behind.
func (s *Server) StreamLiveMatches(req *pb.LiveMatchRequest, stream pb.AFCON_StreamLiveMatchesServer) error {
	if req.GetLeagueId() <= 0 || req.GetSeason() <= 0 {
		return status.Error(codes.InvalidArgument, "league_id and season are required")
	}
	leagueID, season := int(req.GetLeagueId()), int(req.GetSeason())

	id, ch := s.broadcaster.Subscribe(leagueID, season)
	defer s.broadcaster.Unsubscribe(leagueID, season, id)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-ch:
			if !ok {
				return status.Error(codes.ResourceExhausted, "stream evicted: client not keeping up")
			}
			if err := stream.Send(updateToPB(u)); err != nil {
				return err
			}
		}
	}
}

// SyncFixtures pulls the full league-season fixture list from the upstream
// provider and upserts it into the repository.
func (s *Server) SyncFixtures(ctx context.Context, req *pb.SyncFixturesRequest) (*pb.SyncFixturesResponse, error) {
	if req.GetLeagueId() <= 0 || req.GetSeason() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "league_id and season are required")
	}
	leagueID, season := int(req.GetLeagueId()), int(req.GetSeason())

	fixtures, err := s.upstream.FixturesForLeagueSeason(ctx, leagueID, season)
	if err != nil {
		s.logger.Error("Fixture sync fetch failed", "league_id", leagueID, "season", season, "error", err)
		return nil, status.Errorf(codes.Unavailable, "upstream fetch: %v", err)
	}

	synced, err := s.repo.UpsertBatch(ctx, fixtures, leagueID, season, req.GetCompetition())
	if err != nil {
		s.logger.Warn("Fixture sync completed with errors",
			"league_id", leagueID, "season", season, "synced", synced, "error", err)
		return &pb.SyncFixturesResponse{
			Success:        false,
			FixturesSynced: int32(synced),
			Message:        fmt.Sprintf("partial sync: %v", err),
		}, nil
	}

	s.logger.Info("Fixture sync completed", "league_id", leagueID, "season", season, "synced", synced)
	return &pb.SyncFixturesResponse{
		Success:        true,
		FixturesSynced: int32(synced),
		Message:        fmt.Sprintf("synced %d fixtures", synced),
	}, nil
}

// GetFixturesByDate returns the fixtures of one UTC calendar day. The read
// order is cache, then a fresh upstream fetch; the repository answers only
// when the upstream is unreachable.
func (s *Server) GetFixturesByDate(ctx context.Context, req *pb.FixturesByDateRequest) (*pb.FixturesByDateResponse, error) {
	if req.GetLeagueId() <= 0 || req.GetSeason() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "league_id and season are required")
	}
	day, err := time.ParseInLocation("2006-01-02", req.GetDate(), time.UTC)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "date must be YYYY-MM-DD: %v", err)
	}
	leagueID, season := int(req.GetLeagueId()), int(req.GetSeason())

	key := fmt.Sprintf(cache.KeyFixturesDateFmt, leagueID, season, day.Format("2006-01-02"))
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("Cache read failed", "key", key, "error", err)
	} else if ok {
		var cached []fixture.Data
		if err := json.Unmarshal(data, &cached); err == nil {
			return &pb.FixturesByDateResponse{Fixtures: fixturesToPB(cached)}, nil
		}
		s.logger.Warn("Discarding undecodable cache entry", "key", key)
	}

	all, err := s.upstream.FixturesForLeagueSeason(ctx, leagueID, season)
	if err != nil {
		s.logger.Warn("Upstream fixtures fetch failed, serving from repository",
			"league_id", leagueID, "season", season, "error", err)
		fixtures, repoErr := s.repo.FixturesForDate(ctx, leagueID, season, day)
		if repoErr != nil {
			return nil, status.Errorf(codes.Unavailable, "fixtures by date: upstream: %v, repository: %v", err, repoErr)
		}
		return &pb.FixturesByDateResponse{Fixtures: fixturesToPB(fixtures)}, nil
	}

	if _, err := s.repo.UpsertBatch(ctx, all, leagueID, season, ""); err != nil {
		s.logger.Warn("Fixture upsert failed", "league_id", leagueID, "season", season, "error", err)
	}

	fixtures := fixturesOnDay(all, day)
	if data, err := json.Marshal(fixtures); err == nil {
		if err := s.cache.Set(ctx, key, data, fixturesCacheTTL); err != nil {
			s.logger.Warn("Cache write failed", "key", key, "error", err)
		}
	}
	return &pb.FixturesByDateResponse{Fixtures: fixturesToPB(fixtures)}, nil
}

// fixturesOnDay filters a season's fixture list down to the UTC calendar
// day starting at dayStart, ascending by kickoff.
func fixturesOnDay(all []fixture.Data, dayStart time.Time) []fixture.Data {
	dayEnd := dayStart.Add(24 * time.Hour)
	var out []fixture.Data
	for _, f := range all {
		k := f.Kickoff.UTC()
		if !k.Before(dayStart) && k.Before(dayEnd) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kickoff.Before(out[j].Kickoff) })
	return out
}

// GetStandings returns the league table, preferring the cache kept warm by
// the standings refresher and falling back to a direct upstream fetch.
func (s *Server) GetStandings(ctx context.Context, req *pb.StandingsRequest) (*pb.StandingsResponse, error) {
	if req.GetLeagueId() <= 0 || req.GetSeason() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "league_id and season are required")
	}
	leagueID, season := int(req.GetLeagueId()), int(req.GetSeason())

	key := fmt.Sprintf(cache.KeyStandingsFmt, leagueID, season)
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("Cache read failed", "key", key, "error", err)
	} else if ok {
		var cached []fixture.StandingGroup
		if err := json.Unmarshal(data, &cached); err == nil {
			return &pb.StandingsResponse{Groups: standingsToPB(cached)}, nil
		}
		s.logger.Warn("Discarding undecodable cache entry", "key", key)
	}

	groups, err := s.upstream.Standings(ctx, leagueID, season)
	if err != nil {
		s.logger.Error("Standings fetch failed", "league_id", leagueID, "season", season, "error", err)
		return nil, status.Errorf(codes.Unavailable, "upstream standings: %v", err)
	}

	if data, err := json.Marshal(groups); err == nil {
		if err := s.cache.Set(ctx, key, data, standingsCacheTTL); err != nil {
			s.logger.Warn("Cache write failed", "key", key, "error", err)
		}
	}
	return &pb.StandingsResponse{Groups: standingsToPB(groups)}, nil
}
