// Command afconctl is the AFCON data service operations CLI.
//
// Usage:
//
//	afconctl sync --league 6 --season 2025
//	afconctl next --league 6 --season 2025
//	afconctl retention --cutoff 2160h
//	afconctl standings --league 6 --season 2025
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kelmensah/afcon-data/internal/config"
	"github.com/kelmensah/afcon-data/internal/db"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/upstream"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "afconctl",
		Short: "AFCON data service operations CLI",
	}

	root.AddCommand(syncCmd())
	root.AddCommand(nextCmd())
	root.AddCommand(retentionCmd())
	root.AddCommand(standingsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// sync command
// --------------------------------------------------------------------------

func syncCmd() *cobra.Command {
	var leagueID, season int
	var name string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync a league season's fixtures from the upstream provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				client := upstream.NewAPIFootball(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey, cfg.UpstreamRPM, logger)
				repo := fixture.NewRepository(pool.Pool)

				start := time.Now()
				fixtures, err := client.FixturesForLeagueSeason(ctx, leagueID, season)
				if err != nil {
					return fmt.Errorf("fetch fixtures: %w", err)
				}
				synced, err := repo.UpsertBatch(ctx, fixtures, leagueID, season, name)
				logger.Info("Sync finished",
					"league_id", leagueID, "season", season,
					"fetched", len(fixtures), "synced", synced,
					"duration", time.Since(start).Round(time.Millisecond))
				return err
			})
		},
	}
	cmd.Flags().IntVar(&leagueID, "league", config.DefaultLeagues[0].ID, "Upstream league ID")
	cmd.Flags().IntVar(&season, "season", config.DefaultLeagues[0].Season, "Season year")
	cmd.Flags().StringVar(&name, "name", "", "Competition display name")
	return cmd
}

// --------------------------------------------------------------------------
// next command
// --------------------------------------------------------------------------

func nextCmd() *cobra.Command {
	var leagueID, season int
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next upcoming kickoff and its fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				repo := fixture.NewRepository(pool.Pool)
				next, err := repo.NextUpcomingKickoff(ctx, leagueID, season)
				if err != nil {
					return fmt.Errorf("next kickoff: %w", err)
				}
				if next == nil {
					fmt.Println("no upcoming fixtures")
					return nil
				}
				fixtures, err := repo.FixturesAtKickoff(ctx, leagueID, season, *next)
				if err != nil {
					return fmt.Errorf("fixtures at kickoff: %w", err)
				}
				fmt.Printf("next kickoff: %s (in %s)\n",
					next.Format(time.RFC3339), time.Until(*next).Round(time.Minute))
				for _, f := range fixtures {
					fmt.Printf("  %d  %s vs %s  [%s]\n", f.ID, f.Home.Name, f.Away.Name, f.StatusShort)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&leagueID, "league", config.DefaultLeagues[0].ID, "Upstream league ID")
	cmd.Flags().IntVar(&season, "season", config.DefaultLeagues[0].Season, "Season year")
	return cmd
}

// --------------------------------------------------------------------------
// retention command
// --------------------------------------------------------------------------

func retentionCmd() *cobra.Command {
	var cutoff time.Duration
	cmd := &cobra.Command{
		Use:   "retention",
		Short: "Delete finished fixtures older than the cutoff",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				repo := fixture.NewRepository(pool.Pool)
				removed, err := repo.DeleteFinished(ctx, time.Now().Add(-cutoff))
				if err != nil {
					return fmt.Errorf("delete finished: %w", err)
				}
				logger.Info("Retention sweep finished", "removed", removed, "cutoff", cutoff)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&cutoff, "cutoff", 90*24*time.Hour, "Age past which finished fixtures are removed")
	return cmd
}

// --------------------------------------------------------------------------
// standings command
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	var leagueID, season int
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Fetch and print the current league table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			client := upstream.NewAPIFootball(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey, cfg.UpstreamRPM, logger)
			groups, err := client.Standings(ctx, leagueID, season)
			if err != nil {
				return fmt.Errorf("fetch standings: %w", err)
			}
			for _, g := range groups {
				fmt.Printf("%s\n", g.Name)
				for _, row := range g.Rows {
					fmt.Printf("  %2d. %-28s %2dpts  P%d W%d D%d L%d  GD%+d\n",
						row.Rank, row.Team.Name, row.Points,
						row.Played, row.Win, row.Draw, row.Lose, row.GoalsDiff)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&leagueID, "league", config.DefaultLeagues[0].ID, "Upstream league ID")
	cmd.Flags().IntVar(&season, "season", config.DefaultLeagues[0].Season, "Season year")
	return cmd
}

// run loads configuration, connects the pool, and invokes fn with both.
func run(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
