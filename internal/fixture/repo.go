package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrWriteConflict is returned when an upsert trips the api_fixture_id
// uniqueness constraint in a way the ON CONFLICT clause cannot absorb.
// Under the upsert contract this should never happen; callers log loudly
// and drop the write.
var ErrWriteConflict = errors.New("fixture write conflict")

// Window is the earliest/latest kickoff pair for one UTC calendar day.
type Window struct {
	Earliest time.Time
	Latest   time.Time
}

// Repository is the authoritative fixture store. All calendar arithmetic
// is UTC; the upstream API is never consulted from here.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a Repository over an established pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Upsert inserts or updates one fixture snapshot. Idempotent: repeating the
// same snapshot is a no-op. The SQL refuses to regress a terminal fixture
// back to a live status and freezes kickoff once the fixture leaves the
// pre-live states.
func (r *Repository) Upsert(ctx context.Context, f Data, leagueID, season int, competition string) error {
	_, err := r.pool.Exec(ctx, "fixture_upsert",
		f.ID, leagueID, season, competition, f.Kickoff.UTC(),
		string(f.StatusShort), f.StatusLong, f.Elapsed, f.Extra,
		f.Home.ID, f.Home.Name, f.Home.Logo, f.Home.Winner,
		f.Away.ID, f.Away.Name, f.Away.Logo, f.Away.Winner,
		f.HomeGoals, f.AwayGoals, f.HalftimeH, f.HalftimeA,
		f.FulltimeH, f.FulltimeA, f.PeriodFirst, f.PeriodSecond,
		f.Venue, f.Referee,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: fixture %d: %s", ErrWriteConflict, f.ID, pgErr.Message)
		}
		return fmt.Errorf("upsert fixture %d: %w", f.ID, err)
	}
	return nil
}

// UpsertBatch upserts fixtures sequentially. The batch is not atomic;
// the returned count is how many rows were written before any error, and
// processing continues past individual failures.
func (r *Repository) UpsertBatch(ctx context.Context, fixtures []Data, leagueID, season int, competition string) (int, error) {
	var written int
	var firstErr error
	for _, f := range fixtures {
		if err := r.Upsert(ctx, f, leagueID, season, competition); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		written++
	}
	return written, firstErr
}

// NextUpcomingKickoff returns the smallest kickoff strictly in the future
// among not-yet-started fixtures for the key. Returns nil when no such
// fixture exists.
func (r *Repository) NextUpcomingKickoff(ctx context.Context, leagueID, season int) (*time.Time, error) {
	var next *time.Time
	err := r.pool.QueryRow(ctx, "next_upcoming_kickoff", leagueID, season, time.Now().UTC()).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("next upcoming kickoff %d/%d: %w", leagueID, season, err)
	}
	return next, nil
}

// FixturesAtKickoff returns all fixtures co-scheduled at exactly the given
// instant.
func (r *Repository) FixturesAtKickoff(ctx context.Context, leagueID, season int, at time.Time) ([]Data, error) {
	rows, err := r.pool.Query(ctx, "fixtures_at_kickoff", leagueID, season, at.UTC())
	if err != nil {
		return nil, fmt.Errorf("fixtures at kickoff %d/%d: %w", leagueID, season, err)
	}
	defer rows.Close()
	return scanFixtures(rows)
}

// DailyWindow returns the earliest and latest kickoff on the UTC calendar
// day containing ref, or nil when the day has no fixtures.
func (r *Repository) DailyWindow(ctx context.Context, leagueID, season int, ref time.Time) (*Window, error) {
	start, end := utcDayBounds(ref)

	var earliest, latest *time.Time
	err := r.pool.QueryRow(ctx, "daily_fixture_window", leagueID, season, start, end).Scan(&earliest, &latest)
	if err != nil {
		return nil, fmt.Errorf("daily window %d/%d: %w", leagueID, season, err)
	}
	if earliest == nil || latest == nil {
		return nil, nil
	}
	return &Window{Earliest: *earliest, Latest: *latest}, nil
}

// FixturesForDate returns the UTC-day scoped fixture list, ascending by
// kickoff.
func (r *Repository) FixturesForDate(ctx context.Context, leagueID, season int, date time.Time) ([]Data, error) {
	start, end := utcDayBounds(date)

	rows, err := r.pool.Query(ctx, "fixtures_for_date", leagueID, season, start, end)
	if err != nil {
		return nil, fmt.Errorf("fixtures for date %d/%d: %w", leagueID, season, err)
	}
	defer rows.Close()
	return scanFixtures(rows)
}

// ByID returns one stored fixture, or pgx.ErrNoRows wrapped when unknown.
func (r *Repository) ByID(ctx context.Context, apiFixtureID int) (*Data, error) {
	rows, err := r.pool.Query(ctx, "fixture_by_id", apiFixtureID)
	if err != nil {
		return nil, fmt.Errorf("fixture %d: %w", apiFixtureID, err)
	}
	defer rows.Close()

	fixtures, err := scanFixtures(rows)
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("fixture %d: %w", apiFixtureID, pgx.ErrNoRows)
	}
	return &fixtures[0], nil
}

// HasFixtures reports whether any fixture is stored for the key. Used by
// the initial-sync gate.
func (r *Repository) HasFixtures(ctx context.Context, leagueID, season int) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, "has_fixtures", leagueID, season).Scan(&exists); err != nil {
		return false, fmt.Errorf("has fixtures %d/%d: %w", leagueID, season, err)
	}
	return exists, nil
}

// HasLiveMatches reports whether any stored fixture for the key currently
// has a live status. The standings refresher uses this to pick a cache TTL.
func (r *Repository) HasLiveMatches(ctx context.Context, leagueID, season int) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, "has_live_matches", leagueID, season).Scan(&exists); err != nil {
		return false, fmt.Errorf("has live matches %d/%d: %w", leagueID, season, err)
	}
	return exists, nil
}

// DeleteFinished removes terminally-finished fixtures that kicked off
// before the cutoff. Returns the number of rows removed.
func (r *Repository) DeleteFinished(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, "delete_finished_fixtures", olderThan.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete finished fixtures: %w", err)
	}
	return tag.RowsAffected(), nil
}

// --------------------------------------------------------------------------
// Scanning helpers
// --------------------------------------------------------------------------

func scanFixtures(rows pgx.Rows) ([]Data, error) {
	var fixtures []Data
	for rows.Next() {
		var f Data
		var status string
		if err := rows.Scan(
			&f.ID, &f.LeagueID, &f.Season, &f.Competition, &f.Kickoff,
			&status, &f.StatusLong, &f.Elapsed, &f.Extra,
			&f.Home.ID, &f.Home.Name, &f.Home.Logo, &f.Home.Winner,
			&f.Away.ID, &f.Away.Name, &f.Away.Logo, &f.Away.Winner,
			&f.HomeGoals, &f.AwayGoals, &f.HalftimeH, &f.HalftimeA,
			&f.FulltimeH, &f.FulltimeA, &f.PeriodFirst, &f.PeriodSecond,
			&f.Venue, &f.Referee,
		); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}
		f.StatusShort = ParseStatus(status)
		f.Kickoff = f.Kickoff.UTC()
		fixtures = append(fixtures, f)
	}
	return fixtures, rows.Err()
}

func utcDayBounds(ref time.Time) (time.Time, time.Time) {
	ref = ref.UTC()
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
