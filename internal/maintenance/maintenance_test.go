package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	calls   int
	cutoffs []time.Time
	err     error
}

func (s *fakeStore) DeleteFinished(_ context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.cutoffs = append(s.cutoffs, olderThan)
	if s.err != nil {
		return 0, s.err
	}
	return 5, nil
}

func (s *fakeStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestStartRunsRetentionSweeps(t *testing.T) {
	store := &fakeStore{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Start(ctx, store, Config{
		RetentionInterval: 10 * time.Millisecond,
		RetentionCutoff:   90 * 24 * time.Hour,
	}, slog.Default())

	require.Eventually(t, func() bool {
		return store.callCount() >= 2
	}, 5*time.Second, 5*time.Millisecond)

	store.mu.Lock()
	cutoff := store.cutoffs[0]
	store.mu.Unlock()
	require.WithinDuration(t, time.Now().Add(-90*24*time.Hour), cutoff, time.Minute)
}

func TestStartZeroIntervalDisablesSweep(t *testing.T) {
	store := &fakeStore{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Start(ctx, store, Config{RetentionInterval: 0}, slog.Default())
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, store.callCount())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancellation")
	}
}

func TestSweepFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("connection refused")}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Start(ctx, store, Config{
		RetentionInterval: 10 * time.Millisecond,
		RetentionCutoff:   time.Hour,
	}, slog.Default())

	// The loop keeps ticking through failures.
	require.Eventually(t, func() bool {
		return store.callCount() >= 3
	}, 5*time.Second, 5*time.Millisecond)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 24*time.Hour, cfg.RetentionInterval)
	require.Equal(t, 90*24*time.Hour, cfg.RetentionCutoff)
}
