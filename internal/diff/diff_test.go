package diff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelmensah/afcon-data/internal/fixture"
)

func intp(n int) *int { return &n }

func snapshot(home, away int, status fixture.Status, elapsed int) fixture.Data {
	return fixture.Data{
		ID:          101,
		StatusShort: status,
		Elapsed:     intp(elapsed),
		HomeGoals:   intp(home),
		AwayGoals:   intp(away),
	}
}

func goalEvent(elapsed int, player string) fixture.Event {
	return fixture.Event{Elapsed: elapsed, Kind: fixture.EventGoal, Detail: "Normal Goal", PlayerName: player, PlayerID: elapsed}
}

func TestDetectEventType(t *testing.T) {
	base := snapshot(0, 0, fixture.StatusFirstHalf, 10)

	tests := []struct {
		name       string
		prev, cur  fixture.Data
		prevEvents []fixture.Event
		curEvents  []fixture.Event
		want       Kind
	}{
		{
			name: "new goal event",
			prev: base,
			cur:  snapshot(1, 0, fixture.StatusFirstHalf, 23),
			curEvents: []fixture.Event{
				goalEvent(23, "Osimhen"),
			},
			want: KindGoal,
		},
		{
			name: "missed penalty stays a goal event upstream but classifies apart",
			prev: base,
			cur:  snapshot(0, 0, fixture.StatusFirstHalf, 31),
			curEvents: []fixture.Event{
				{Elapsed: 31, Kind: fixture.EventGoal, Detail: "Missed Penalty", PlayerID: 5},
			},
			want: KindMissedPenalty,
		},
		{
			name: "goal outranks card arriving in the same tick",
			prev: base,
			cur:  snapshot(1, 0, fixture.StatusFirstHalf, 40),
			curEvents: []fixture.Event{
				{Elapsed: 39, Kind: fixture.EventCard, Detail: "Yellow Card", PlayerID: 7},
				goalEvent(40, "Salah"),
			},
			want: KindGoal,
		},
		{
			name: "red card",
			prev: base,
			cur:  snapshot(0, 0, fixture.StatusFirstHalf, 40),
			curEvents: []fixture.Event{
				{Elapsed: 40, Kind: fixture.EventCard, Detail: "Red Card", PlayerID: 7},
			},
			want: KindRedCard,
		},
		{
			name: "second yellow counts as red",
			prev: base,
			cur:  snapshot(0, 0, fixture.StatusSecondHalf, 77),
			curEvents: []fixture.Event{
				{Elapsed: 77, Kind: fixture.EventCard, Detail: "Second Yellow card", PlayerID: 9},
			},
			want: KindRedCard,
		},
		{
			name: "yellow card",
			prev: base,
			cur:  snapshot(0, 0, fixture.StatusFirstHalf, 12),
			curEvents: []fixture.Event{
				{Elapsed: 12, Kind: fixture.EventCard, Detail: "Yellow Card", PlayerID: 3},
			},
			want: KindYellowCard,
		},
		{
			name: "substitution",
			prev: base,
			cur:  snapshot(0, 0, fixture.StatusSecondHalf, 60),
			curEvents: []fixture.Event{
				{Elapsed: 60, Kind: fixture.EventSubstitution, Detail: "Substitution 1", PlayerID: 14},
			},
			want: KindSubstitution,
		},
		{
			name: "var review",
			prev: base,
			cur:  snapshot(0, 0, fixture.StatusFirstHalf, 28),
			curEvents: []fixture.Event{
				{Elapsed: 28, Kind: fixture.EventVAR, Detail: "Goal cancelled", PlayerID: 11},
			},
			want: KindVAR,
		},
		{
			name: "score changed without a matching event",
			prev: base,
			cur:  snapshot(1, 0, fixture.StatusFirstHalf, 33),
			want: KindGoal,
		},
		{
			name: "status flip",
			prev: snapshot(1, 0, fixture.StatusFirstHalf, 45),
			cur:  snapshot(1, 0, fixture.StatusHalftime, 45),
			want: KindStatusUpdate,
		},
		{
			name: "nothing but the clock",
			prev: snapshot(0, 0, fixture.StatusFirstHalf, 10),
			cur:  snapshot(0, 0, fixture.StatusFirstHalf, 11),
			want: KindTimeUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEventType(tt.prev, tt.cur, tt.prevEvents, tt.curEvents)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDetectEventTypeIgnoresAlreadySeenEvents(t *testing.T) {
	prev := snapshot(1, 0, fixture.StatusFirstHalf, 23)
	cur := snapshot(1, 0, fixture.StatusFirstHalf, 24)
	events := []fixture.Event{goalEvent(23, "Osimhen")}

	// Same goal on both sides of the diff: not a new event, still 1-0.
	got := DetectEventType(prev, cur, events, events)
	require.Equal(t, KindTimeUpdate, got)
}

func TestHasSignificantChanges(t *testing.T) {
	base := snapshot(0, 0, fixture.StatusFirstHalf, 10)

	t.Run("score", func(t *testing.T) {
		require.True(t, HasSignificantChanges(base, snapshot(1, 0, fixture.StatusFirstHalf, 10), nil, nil))
	})
	t.Run("status", func(t *testing.T) {
		require.True(t, HasSignificantChanges(base, snapshot(0, 0, fixture.StatusHalftime, 45), nil, nil))
	})
	t.Run("new event only", func(t *testing.T) {
		require.True(t, HasSignificantChanges(base, base, nil, []fixture.Event{goalEvent(9, "X")}))
	})
	t.Run("elapsed advance", func(t *testing.T) {
		require.True(t, HasSignificantChanges(base, snapshot(0, 0, fixture.StatusFirstHalf, 11), nil, nil))
	})
	t.Run("identical tick", func(t *testing.T) {
		require.False(t, HasSignificantChanges(base, base, nil, nil))
	})
	t.Run("elapsed never fires when not live", func(t *testing.T) {
		prev := snapshot(0, 0, fixture.StatusNotStarted, 0)
		cur := snapshot(0, 0, fixture.StatusNotStarted, 5)
		require.False(t, HasSignificantChanges(prev, cur, nil, nil))
	})
}

func TestNewEvents(t *testing.T) {
	a := goalEvent(10, "A")
	b := fixture.Event{Elapsed: 20, Kind: fixture.EventCard, Detail: "Yellow Card", PlayerID: 2}
	c := fixture.Event{Elapsed: 30, Kind: fixture.EventSubstitution, PlayerID: 3}

	fresh := NewEvents([]fixture.Event{a, b}, []fixture.Event{a, b, c})
	require.Len(t, fresh, 1)
	require.True(t, fresh[0].SameIdentity(c))

	require.Empty(t, NewEvents([]fixture.Event{a, b}, []fixture.Event{a, b}))
	require.Empty(t, NewEvents([]fixture.Event{a, b}, nil))
}

func TestRecentEventsSortsByMatchTime(t *testing.T) {
	in := []fixture.Event{
		{Elapsed: 90, Extra: 4, Kind: fixture.EventGoal, PlayerID: 1},
		{Elapsed: 12, Kind: fixture.EventCard, PlayerID: 2},
		{Elapsed: 90, Extra: 1, Kind: fixture.EventSubstitution, PlayerID: 3},
		{Elapsed: 45, Extra: 2, Kind: fixture.EventGoal, PlayerID: 4},
	}
	out := RecentEvents(in)

	require.Len(t, out, len(in))
	for i := 1; i < len(out); i++ {
		require.LessOrEqual(t,
			out[i-1].Elapsed+out[i-1].Extra,
			out[i].Elapsed+out[i].Extra)
	}
	// Input untouched.
	require.Equal(t, 90, in[0].Elapsed)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "goal", KindGoal.String())
	require.Equal(t, "match_finished", KindMatchFinished.String())
	require.Equal(t, "time_update", Kind(99).String())
}
