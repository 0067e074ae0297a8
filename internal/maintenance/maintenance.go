// Package maintenance runs periodic background tasks as Go tickers.
// All scheduled work is driven from Go since the service is already a
// persistent, long-running process.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// Store is the slice of the fixture repository retention needs.
type Store interface {
	DeleteFinished(ctx context.Context, olderThan time.Time) (int64, error)
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	RetentionInterval time.Duration // Finished-fixture sweep cadence
	RetentionCutoff   time.Duration // Age past which finished fixtures are removed
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		RetentionInterval: 24 * time.Hour,
		RetentionCutoff:   90 * 24 * time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, store Store, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"retention_interval", cfg.RetentionInterval,
		"retention_cutoff", cfg.RetentionCutoff)

	tickers := make([]*time.Ticker, 0, 1)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	// Retention: remove long-finished fixtures the read surfaces no longer
	// need. Live and upcoming rows are never touched.
	if cfg.RetentionInterval > 0 {
		t := time.NewTicker(cfg.RetentionInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { sweepFinished(ctx, store, cfg.RetentionCutoff, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

func sweepFinished(ctx context.Context, store Store, cutoff time.Duration, logger *slog.Logger) {
	start := time.Now()
	removed, err := store.DeleteFinished(ctx, time.Now().Add(-cutoff))
	dur := time.Since(start).Round(time.Millisecond)
	if err != nil {
		logger.Warn("Retention sweep failed", "duration", dur, "error", err)
		return
	}
	if removed > 0 {
		logger.Info("Retention sweep done", "removed", removed, "duration", dur)
	}
}
