// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kelmensah/afcon-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// fixtureColumns is the scan order shared by every fixture SELECT.
const fixtureColumns = `api_fixture_id, league_id, season, competition, kickoff,
	status_short, status_long, elapsed, extra,
	home_team_id, home_team_name, home_team_logo, home_winner,
	away_team_id, away_team_name, away_team_logo, away_winner,
	home_goals, away_goals, halftime_home, halftime_away,
	fulltime_home, fulltime_away, period_first, period_second,
	venue, referee`

// registerPreparedStatements registers all statements the repository uses.
// Prepared statements eliminate parse overhead on the poll-tick hot path.
//
// Upsert rules live in the SQL itself: a terminal fixture never regresses
// to a live status (the whole update is skipped when the upstream briefly
// contradicts itself), and kickoff is only writable while the fixture is
// still pre-live.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Upsert path
		"fixture_upsert": `
			INSERT INTO fixtures (
				api_fixture_id, league_id, season, competition, kickoff,
				status_short, status_long, elapsed, extra,
				home_team_id, home_team_name, home_team_logo, home_winner,
				away_team_id, away_team_name, away_team_logo, away_winner,
				home_goals, away_goals, halftime_home, halftime_away,
				fulltime_home, fulltime_away, period_first, period_second,
				venue, referee, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
				$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25,
				$26, $27, NOW()
			)
			ON CONFLICT (api_fixture_id) DO UPDATE SET
				competition    = EXCLUDED.competition,
				kickoff        = CASE WHEN fixtures.status_short IN ('NS', 'TBD')
				                      THEN EXCLUDED.kickoff ELSE fixtures.kickoff END,
				status_short   = EXCLUDED.status_short,
				status_long    = EXCLUDED.status_long,
				elapsed        = EXCLUDED.elapsed,
				extra          = EXCLUDED.extra,
				home_team_name = EXCLUDED.home_team_name,
				home_team_logo = EXCLUDED.home_team_logo,
				home_winner    = EXCLUDED.home_winner,
				away_team_name = EXCLUDED.away_team_name,
				away_team_logo = EXCLUDED.away_team_logo,
				away_winner    = EXCLUDED.away_winner,
				home_goals     = EXCLUDED.home_goals,
				away_goals     = EXCLUDED.away_goals,
				halftime_home  = EXCLUDED.halftime_home,
				halftime_away  = EXCLUDED.halftime_away,
				fulltime_home  = EXCLUDED.fulltime_home,
				fulltime_away  = EXCLUDED.fulltime_away,
				period_first   = EXCLUDED.period_first,
				period_second  = EXCLUDED.period_second,
				venue          = EXCLUDED.venue,
				referee        = EXCLUDED.referee,
				updated_at     = NOW()
			WHERE NOT (
				fixtures.status_short IN ('FT', 'AET', 'PEN', 'PST', 'CANC', 'ABD', 'AWD', 'WO')
				AND EXCLUDED.status_short IN ('1H', 'HT', '2H', 'ET', 'BT', 'P', 'LIVE', 'SUSP', 'INT')
			)`,

		// Schedule queries
		"next_upcoming_kickoff": `
			SELECT MIN(kickoff) FROM fixtures
			WHERE league_id = $1 AND season = $2
			  AND status_short IN ('NS', 'TBD')
			  AND kickoff > $3`,
		"fixtures_at_kickoff": "SELECT " + fixtureColumns + `
			FROM fixtures
			WHERE league_id = $1 AND season = $2 AND kickoff = $3
			ORDER BY api_fixture_id`,
		"daily_fixture_window": `
			SELECT MIN(kickoff), MAX(kickoff) FROM fixtures
			WHERE league_id = $1 AND season = $2
			  AND kickoff >= $3 AND kickoff < $4`,
		"fixtures_for_date": "SELECT " + fixtureColumns + `
			FROM fixtures
			WHERE league_id = $1 AND season = $2
			  AND kickoff >= $3 AND kickoff < $4
			ORDER BY kickoff, api_fixture_id`,
		"fixture_by_id": "SELECT " + fixtureColumns + `
			FROM fixtures WHERE api_fixture_id = $1`,

		// Probes
		"has_fixtures": `
			SELECT EXISTS (
				SELECT 1 FROM fixtures WHERE league_id = $1 AND season = $2
			)`,
		"has_live_matches": `
			SELECT EXISTS (
				SELECT 1 FROM fixtures
				WHERE league_id = $1 AND season = $2
				  AND status_short IN ('1H', 'HT', '2H', 'ET', 'BT', 'P', 'LIVE', 'SUSP', 'INT')
			)`,

		// Retention
		"delete_finished_fixtures": `
			DELETE FROM fixtures
			WHERE status_short IN ('FT', 'AET', 'PEN', 'PST', 'CANC', 'ABD', 'AWD', 'WO')
			  AND kickoff < $1`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
