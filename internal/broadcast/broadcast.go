// Package broadcast implements the live-match fan-out engine: exactly one
// upstream poller per (league, season) topic regardless of subscriber
// count, delta detection against the previous tick, and multicast delivery
// with per-subscriber buffering.
package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kelmensah/afcon-data/internal/diff"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/metrics"
	"github.com/kelmensah/afcon-data/internal/upstream"
)

// Key identifies one topic.
type Key struct {
	LeagueID int
	Season   int
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.LeagueID, k.Season)
}

// Update is one broadcast message. Fixture is the canonical snapshot at
// emission time, Events the full ordered event list, and Trigger the new
// event that caused the emission (nil for time/status updates).
type Update struct {
	FixtureID int
	EmittedAt time.Time
	Kind      diff.Kind
	Fixture   fixture.Data
	Events    []fixture.Event
	Trigger   *fixture.Event
}

// Store is the slice of the fixture repository the poller needs.
type Store interface {
	Upsert(ctx context.Context, f fixture.Data, leagueID, season int, competition string) error
	NextUpcomingKickoff(ctx context.Context, leagueID, season int) (*time.Time, error)
}

// NotifyFunc receives updates that warrant a push notification. It is
// invoked fire-and-forget; its failures never reach the stream.
type NotifyFunc func(Update)

// Options tunes the broadcaster. Zero values fall back to defaults.
type Options struct {
	Buffer    int // per-subscriber outbound buffer
	DropLimit int // consecutive drops before eviction; 0 keeps slow subscribers
	Intervals Intervals
	Metrics   *metrics.Metrics
	Notify    NotifyFunc
}

const (
	defaultBuffer = 64

	// How often an idle poller re-consults the repository for the next
	// kickoff.
	nextKickoffLookupEvery = 5 * time.Minute

	// Soft timeout for individual upstream calls inside a tick.
	upstreamCallTimeout = 30 * time.Second
)

// Broadcaster owns every live topic in the process.
type Broadcaster struct {
	upstream  upstream.Client
	store     Store
	logger    *slog.Logger
	intervals Intervals
	buffer    int
	dropLimit int
	metrics   *metrics.Metrics
	notify    NotifyFunc

	baseCtx context.Context

	mu     sync.Mutex // topics map + poller start/stop decisions
	topics map[Key]*topic

	pauseMu sync.RWMutex
	paused  map[Key]bool
}

// New creates a Broadcaster. The base context bounds every poller's
// lifetime; cancelling it stops them all on shutdown. Subscriber contexts
// never reach the pollers.
func New(ctx context.Context, client upstream.Client, store Store, logger *slog.Logger, opts Options) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Buffer <= 0 {
		opts.Buffer = defaultBuffer
	}
	if opts.Intervals == (Intervals{}) {
		opts.Intervals = DefaultIntervals()
	}
	return &Broadcaster{
		baseCtx:   ctx,
		upstream:  client,
		store:     store,
		logger:    logger,
		intervals: opts.Intervals,
		buffer:    opts.Buffer,
		dropLimit: opts.DropLimit,
		metrics:   opts.Metrics,
		notify:    opts.Notify,
		topics:    make(map[Key]*topic),
		paused:    make(map[Key]bool),
	}
}

type subscriber struct {
	id    string
	ch    chan Update
	drops int // consecutive; poller-owned
}

type topic struct {
	key    Key
	cancel context.CancelFunc
	done   chan struct{}

	subMu sync.RWMutex
	subs  map[string]*subscriber

	// Poller-owned; no lock needed (single writer).
	lastSnapshot   map[int]fixture.Data
	lastEvents     map[int][]fixture.Event
	halftimeSince  map[int]time.Time
	lastNextLookup time.Time
	nextKickoff    *time.Time
}

// Subscribe registers a new subscriber for the topic and returns its
// identifier and read channel. If the topic had no subscribers, the poller
// is started. Updates produced after the registration point are delivered;
// earlier ones are not.
func (b *Broadcaster) Subscribe(leagueID, season int) (string, <-chan Update) {
	key := Key{LeagueID: leagueID, Season: season}
	sub := &subscriber{
		id: uuid.NewString(),
		ch: make(chan Update, b.buffer),
	}

	b.mu.Lock()
	t, ok := b.topics[key]
	if !ok {
		pollerCtx, cancel := context.WithCancel(b.baseCtx)
		t = &topic{
			key:           key,
			cancel:        cancel,
			done:          make(chan struct{}),
			subs:          make(map[string]*subscriber),
			lastSnapshot:  make(map[int]fixture.Data),
			lastEvents:    make(map[int][]fixture.Event),
			halftimeSince: make(map[int]time.Time),
		}
		b.topics[key] = t
		go b.runPoller(pollerCtx, t)
	}
	t.subMu.Lock()
	t.subs[sub.id] = sub
	count := len(t.subs)
	t.subMu.Unlock()
	b.mu.Unlock()

	if b.metrics != nil {
		b.metrics.Subscribers.WithLabelValues(key.String()).Set(float64(count))
	}
	b.logger.Info("Subscriber registered",
		"topic", key.String(), "subscriber_id", sub.id, "count", count)
	return sub.id, sub.ch
}

// Unsubscribe removes a subscriber and closes its channel. When the last
// subscriber leaves, the topic's poller is cancelled and the topic state
// evicted; the call returns once the poller has wound down.
func (b *Broadcaster) Unsubscribe(leagueID, season int, subscriberID string) {
	b.unsubscribe(Key{LeagueID: leagueID, Season: season}, subscriberID, true)
}

// unsubscribe does the removal. The poller's eviction path runs this with
// wait=false; the poller cannot block on its own exit.
func (b *Broadcaster) unsubscribe(key Key, subscriberID string, wait bool) {
	b.mu.Lock()
	t, ok := b.topics[key]
	if !ok {
		b.mu.Unlock()
		return
	}
	t.subMu.Lock()
	sub, ok := t.subs[subscriberID]
	if !ok {
		t.subMu.Unlock()
		b.mu.Unlock()
		return
	}
	delete(t.subs, subscriberID)
	close(sub.ch)
	remaining := len(t.subs)
	t.subMu.Unlock()

	if remaining == 0 {
		t.cancel()
		delete(b.topics, key)
	}
	b.mu.Unlock()

	if remaining == 0 && wait {
		// Wait for the poller to acknowledge cancellation so that no
		// upstream call for this topic survives the last subscriber.
		<-t.done
	}

	if b.metrics != nil {
		b.metrics.Subscribers.WithLabelValues(key.String()).Set(float64(remaining))
	}
	b.logger.Info("Subscriber removed",
		"topic", key.String(), "subscriber_id", subscriberID, "remaining", remaining)
}

// SubscriberCount returns the current subscriber count for a topic.
func (b *Broadcaster) SubscriberCount(leagueID, season int) int {
	b.mu.Lock()
	t, ok := b.topics[Key{LeagueID: leagueID, Season: season}]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	t.subMu.RLock()
	defer t.subMu.RUnlock()
	return len(t.subs)
}

// TopicStats returns subscriber counts for all open topics, for the debug
// surface.
func (b *Broadcaster) TopicStats() map[string]int {
	b.mu.Lock()
	topics := make([]*topic, 0, len(b.topics))
	for _, t := range b.topics {
		topics = append(topics, t)
	}
	b.mu.Unlock()

	stats := make(map[string]int, len(topics))
	for _, t := range topics {
		t.subMu.RLock()
		stats[t.key.String()] = len(t.subs)
		t.subMu.RUnlock()
	}
	return stats
}

// Pause sets the per-key pause flag. A paused topic keeps its poller and
// subscribers but makes no upstream calls and emits nothing.
func (b *Broadcaster) Pause(leagueID, season int, paused bool) {
	key := Key{LeagueID: leagueID, Season: season}
	b.pauseMu.Lock()
	b.paused[key] = paused
	b.pauseMu.Unlock()
	b.logger.Info("Topic pause flag set", "topic", key.String(), "paused", paused)
}

// IsPaused reports the pause flag for a key.
func (b *Broadcaster) IsPaused(leagueID, season int) bool {
	b.pauseMu.RLock()
	defer b.pauseMu.RUnlock()
	return b.paused[Key{LeagueID: leagueID, Season: season}]
}

// --------------------------------------------------------------------------
// Poller
// --------------------------------------------------------------------------

func (b *Broadcaster) runPoller(ctx context.Context, t *topic) {
	defer close(t.done)
	logger := b.logger.With("topic", t.key.String())
	logger.Info("Live poller started")

	for {
		if ctx.Err() != nil {
			logger.Info("Live poller stopped")
			return
		}

		sleep, err := b.tick(ctx, t)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("Live poller stopped")
				return
			}
			logger.Warn("Poll tick failed", "error", err)
			sleep = b.intervals.Live
		}

		select {
		case <-ctx.Done():
			logger.Info("Live poller stopped")
			return
		case <-time.After(sleep):
		}
	}
}

// tick runs one poll cycle and returns the next sleep duration.
func (b *Broadcaster) tick(ctx context.Context, t *topic) (time.Duration, error) {
	if b.IsPaused(t.key.LeagueID, t.key.Season) {
		return b.intervals.NextSleep(true, 0, nil, nil, time.Now()), nil
	}

	start := time.Now()
	if b.metrics != nil {
		b.metrics.PollTicks.WithLabelValues(t.key.String()).Inc()
		defer func() {
			b.metrics.PollDuration.WithLabelValues(t.key.String()).Observe(time.Since(start).Seconds())
		}()
	}

	live, err := b.liveFixtures(ctx, t.key.LeagueID)
	if err != nil {
		return 0, fmt.Errorf("live fixtures: %w", err)
	}

	now := time.Now()
	if len(live) == 0 && now.Sub(t.lastNextLookup) > nextKickoffLookupEvery {
		next, err := b.store.NextUpcomingKickoff(ctx, t.key.LeagueID, t.key.Season)
		if err != nil {
			b.logger.Warn("Next kickoff lookup failed", "topic", t.key.String(), "error", err)
		} else {
			t.nextKickoff = next
		}
		t.lastNextLookup = now
	}

	liveIDs := make(map[int]bool, len(live))
	for _, cur := range live {
		liveIDs[cur.ID] = true
		b.processLiveFixture(ctx, t, cur)
	}

	b.finishDepartedFixtures(ctx, t, liveIDs)

	return b.intervals.NextSleep(false, len(live), t.earliestHalftime(), t.nextKickoff, time.Now()), nil
}

// processLiveFixture diffs one live fixture against the previous tick,
// emits an update when warranted, and records the new state.
func (b *Broadcaster) processLiveFixture(ctx context.Context, t *topic, cur fixture.Data) {
	events, eventsErr := b.fixtureEvents(ctx, cur.ID)
	if eventsErr != nil {
		// An event fetch failure must not interrupt the stream; the diff
		// simply sees an empty list this tick.
		b.logger.Warn("Event fetch failed",
			"topic", t.key.String(), "fixture_id", cur.ID, "error", eventsErr)
		events = nil
	}

	prev, known := t.lastSnapshot[cur.ID]
	prevEvents := t.lastEvents[cur.ID]

	switch {
	case !known:
		b.emit(t, Update{
			FixtureID: cur.ID,
			EmittedAt: time.Now(),
			Kind:      diff.KindMatchStarted,
			Fixture:   cur,
			Events:    diff.RecentEvents(events),
		})
	case diff.HasSignificantChanges(prev, cur, prevEvents, events):
		kind := diff.DetectEventType(prev, cur, prevEvents, events)
		var trigger *fixture.Event
		if fresh := diff.NewEvents(prevEvents, events); len(fresh) > 0 {
			last := fresh[len(fresh)-1]
			trigger = &last
		}
		b.emit(t, Update{
			FixtureID: cur.ID,
			EmittedAt: time.Now(),
			Kind:      kind,
			Fixture:   cur,
			Events:    diff.RecentEvents(events),
			Trigger:   trigger,
		})
	}

	if err := b.store.Upsert(ctx, cur, t.key.LeagueID, t.key.Season, cur.Competition); err != nil {
		b.logger.Warn("Upsert failed",
			"topic", t.key.String(), "fixture_id", cur.ID, "error", err)
	}

	if cur.StatusShort == fixture.StatusHalftime {
		if _, ok := t.halftimeSince[cur.ID]; !ok {
			t.halftimeSince[cur.ID] = time.Now()
		}
	} else {
		delete(t.halftimeSince, cur.ID)
	}

	t.lastSnapshot[cur.ID] = cur
	if eventsErr == nil {
		// A failed fetch must not shrink the baseline: diffing the next
		// successful tick against an emptied list would re-emit every
		// already-seen event.
		t.lastEvents[cur.ID] = events
	}
}

// finishDepartedFixtures promotes fixtures that left the live set to a
// final match_finished broadcast and evicts them from the topic state.
// Eviction guarantees at most one match_finished per fixture even if the
// upstream flaps.
func (b *Broadcaster) finishDepartedFixtures(ctx context.Context, t *topic, liveIDs map[int]bool) {
	for id, prev := range t.lastSnapshot {
		if liveIDs[id] {
			continue
		}

		final := prev
		if snap, err := b.fixtureByID(ctx, id); err != nil {
			b.logger.Warn("Final snapshot fetch failed, using last known state",
				"topic", t.key.String(), "fixture_id", id, "error", err)
		} else {
			final = *snap
		}

		if err := b.store.Upsert(ctx, final, t.key.LeagueID, t.key.Season, final.Competition); err != nil {
			b.logger.Warn("Final upsert failed",
				"topic", t.key.String(), "fixture_id", id, "error", err)
		}

		b.emit(t, Update{
			FixtureID: id,
			EmittedAt: time.Now(),
			Kind:      diff.KindMatchFinished,
			Fixture:   final,
			Events:    diff.RecentEvents(t.lastEvents[id]),
		})

		delete(t.lastSnapshot, id)
		delete(t.lastEvents, id)
		delete(t.halftimeSince, id)
	}
}

// emit fans one update out to every subscriber of the topic. Sends are
// non-blocking: a full buffer drops this update for that subscriber only,
// and a subscriber past the drop limit is evicted.
func (b *Broadcaster) emit(t *topic, u Update) {
	var evict []string

	t.subMu.RLock()
	for id, sub := range t.subs {
		select {
		case sub.ch <- u:
			sub.drops = 0
			if b.metrics != nil {
				b.metrics.UpdatesSent.WithLabelValues(t.key.String(), u.Kind.String()).Inc()
			}
		default:
			sub.drops++
			if b.metrics != nil {
				b.metrics.UpdatesDropped.WithLabelValues(t.key.String()).Inc()
			}
			if b.dropLimit > 0 && sub.drops >= b.dropLimit {
				evict = append(evict, id)
			}
		}
	}
	t.subMu.RUnlock()

	for _, id := range evict {
		b.logger.Warn("Evicting slow subscriber",
			"topic", t.key.String(), "subscriber_id", id, "drop_limit", b.dropLimit)
		if b.metrics != nil {
			b.metrics.SubscriberEvictions.WithLabelValues(t.key.String()).Inc()
		}
		b.unsubscribe(t.key, id, false)
	}

	if b.notify != nil {
		switch u.Kind {
		case diff.KindGoal, diff.KindRedCard, diff.KindMatchFinished:
			go b.notify(u)
		}
	}
}

// earliestHalftime returns the earliest halftime entry among live fixtures,
// or nil when none is at the break.
func (t *topic) earliestHalftime() *time.Time {
	var earliest *time.Time
	for _, at := range t.halftimeSince {
		if earliest == nil || at.Before(*earliest) {
			v := at
			earliest = &v
		}
	}
	return earliest
}

// --------------------------------------------------------------------------
// Upstream wrappers with soft timeouts
// --------------------------------------------------------------------------

func (b *Broadcaster) liveFixtures(ctx context.Context, leagueID int) ([]fixture.Data, error) {
	callCtx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
	defer cancel()
	live, err := b.upstream.LiveFixtures(callCtx, leagueID)
	if err != nil && b.metrics != nil {
		b.metrics.UpstreamErrors.WithLabelValues("live_fixtures").Inc()
	}
	return live, err
}

func (b *Broadcaster) fixtureEvents(ctx context.Context, fixtureID int) ([]fixture.Event, error) {
	callCtx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
	defer cancel()
	events, err := b.upstream.FixtureEvents(callCtx, fixtureID)
	if err != nil && b.metrics != nil {
		b.metrics.UpstreamErrors.WithLabelValues("fixture_events").Inc()
	}
	return events, err
}

func (b *Broadcaster) fixtureByID(ctx context.Context, fixtureID int) (*fixture.Data, error) {
	callCtx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
	defer cancel()
	snap, err := b.upstream.FixtureByID(callCtx, fixtureID)
	if err != nil && b.metrics != nil {
		b.metrics.UpstreamErrors.WithLabelValues("fixture_by_id").Inc()
	}
	return snap, err
}
