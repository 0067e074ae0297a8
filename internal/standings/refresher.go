// Package standings runs the per-league standings refresh loop. During a
// match day the league table is re-fetched hourly (anchored on the day's
// first kickoff) and cached; outside the window the loop sleeps to the
// next window. The refresher never touches the fixture store and shares
// nothing with the live broadcaster.
package standings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelmensah/afcon-data/internal/cache"
	"github.com/kelmensah/afcon-data/internal/config"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/metrics"
	"github.com/kelmensah/afcon-data/internal/upstream"
)

// windowTail extends the refresh window past the day's last kickoff so the
// final tables of late matches are captured.
const windowTail = 3 * time.Hour

// noScheduleSleep is the back-off when the league has no upcoming fixture.
const noScheduleSleep = 12 * time.Hour

// Schedule is the slice of the fixture repository the refresher needs.
type Schedule interface {
	DailyWindow(ctx context.Context, leagueID, season int, ref time.Time) (*fixture.Window, error)
	NextUpcomingKickoff(ctx context.Context, leagueID, season int) (*time.Time, error)
	HasLiveMatches(ctx context.Context, leagueID, season int) (bool, error)
}

// Refresher keeps one league's standings cache warm.
type Refresher struct {
	league   config.League
	upstream upstream.Client
	schedule Schedule
	cache    cache.Store
	liveTTL  time.Duration
	idleTTL  time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates a Refresher for one configured league.
func New(league config.League, client upstream.Client, schedule Schedule, store cache.Store,
	liveTTL, idleTTL time.Duration, m *metrics.Metrics, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		league:   league,
		upstream: client,
		schedule: schedule,
		cache:    store,
		liveTTL:  liveTTL,
		idleTTL:  idleTTL,
		metrics:  m,
		logger:   logger.With("league", league.Key()),
	}
}

// Run drives the refresh loop. Blocks until ctx is cancelled. Intended to
// be called with `go`, one per configured league.
func (r *Refresher) Run(ctx context.Context) {
	r.logger.Info("Standings refresher started")
	for {
		sleep := r.step(ctx)
		select {
		case <-ctx.Done():
			r.logger.Info("Standings refresher stopped")
			return
		case <-time.After(sleep):
		}
	}
}

// step performs one decision cycle and returns how long to sleep.
func (r *Refresher) step(ctx context.Context) time.Duration {
	now := time.Now().UTC()

	window, err := r.schedule.DailyWindow(ctx, r.league.ID, r.league.Season, now)
	if err != nil {
		r.logger.Warn("Daily window lookup failed", "error", err)
		return noScheduleSleep
	}

	if window == nil || now.After(window.Latest.Add(windowTail)) {
		return r.sleepToNextWindow(ctx, now)
	}

	anchor := window.Earliest
	if now.Before(anchor) {
		r.logger.Info("Waiting for match-day window", "anchor", anchor)
		return anchor.Sub(now)
	}

	r.refresh(ctx)

	// Next hourly tick anchored on the window start, bounded by its end.
	next := nextHourlyTick(anchor, now)
	windowEnd := window.Latest.Add(windowTail)
	if next.After(windowEnd) {
		next = windowEnd.Add(time.Minute)
	}
	return next.Sub(now)
}

// sleepToNextWindow finds the next match day and returns the sleep to its
// window anchor.
func (r *Refresher) sleepToNextWindow(ctx context.Context, now time.Time) time.Duration {
	next, err := r.schedule.NextUpcomingKickoff(ctx, r.league.ID, r.league.Season)
	if err != nil {
		r.logger.Warn("Next kickoff lookup failed", "error", err)
		return noScheduleSleep
	}
	if next == nil {
		r.logger.Info("No upcoming fixtures, backing off")
		return noScheduleSleep
	}

	anchor := *next
	if window, err := r.schedule.DailyWindow(ctx, r.league.ID, r.league.Season, *next); err == nil && window != nil {
		anchor = window.Earliest
	}
	if sleep := anchor.Sub(now); sleep > 0 {
		r.logger.Info("Sleeping to next match-day window", "anchor", anchor)
		return sleep
	}
	return time.Minute
}

// refresh fetches the standings and writes them to the cache with a TTL
// chosen by the live probe. Failures are logged and retried naturally on
// the next tick.
func (r *Refresher) refresh(ctx context.Context) {
	groups, err := r.upstream.Standings(ctx, r.league.ID, r.league.Season)
	if err != nil {
		r.logger.Warn("Standings fetch failed", "error", err)
		r.count("error")
		return
	}

	live, err := r.schedule.HasLiveMatches(ctx, r.league.ID, r.league.Season)
	if err != nil {
		r.logger.Warn("Live probe failed, assuming idle", "error", err)
		live = false
	}
	ttl := r.idleTTL
	if live {
		ttl = r.liveTTL
	}

	data, err := json.Marshal(groups)
	if err != nil {
		r.logger.Error("Standings encode failed", "error", err)
		r.count("error")
		return
	}

	key := fmt.Sprintf(cache.KeyStandingsFmt, r.league.ID, r.league.Season)
	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		r.logger.Warn("Standings cache write failed", "error", err)
		r.count("error")
		return
	}

	r.logger.Info("Standings refreshed", "groups", len(groups), "ttl", ttl, "live", live)
	r.count("ok")
}

func (r *Refresher) count(result string) {
	if r.metrics != nil {
		r.metrics.StandingsRefreshes.WithLabelValues(r.league.Key(), result).Inc()
	}
}

// nextHourlyTick returns the first anchor+N*hour strictly after now.
func nextHourlyTick(anchor, now time.Time) time.Time {
	if now.Before(anchor) {
		return anchor
	}
	elapsed := now.Sub(anchor)
	steps := elapsed/time.Hour + 1
	return anchor.Add(steps * time.Hour)
}
