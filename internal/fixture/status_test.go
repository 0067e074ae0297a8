package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	require.Equal(t, StatusFirstHalf, ParseStatus("1H"))
	require.Equal(t, StatusFullTime, ParseStatus("FT"))
	require.Equal(t, StatusNotStarted, ParseStatus("NS"))
	require.Equal(t, StatusUnknown, ParseStatus("WEIRD"))
	require.Equal(t, StatusUnknown, ParseStatus(""))
}

func TestStatusPhases(t *testing.T) {
	preLive := []Status{StatusNotStarted, StatusTimeToBeDefined}
	live := []Status{
		StatusFirstHalf, StatusHalftime, StatusSecondHalf, StatusExtraTime,
		StatusBreakTime, StatusPenaltyShootout, StatusLiveGeneric,
		StatusSuspended, StatusInterrupted,
	}
	terminal := []Status{
		StatusFullTime, StatusAfterExtraTime, StatusAfterPenalties,
		StatusPostponed, StatusCancelled, StatusAbandoned,
		StatusTechnicalLoss, StatusWalkOver,
	}

	for _, s := range preLive {
		require.True(t, s.IsPreLive(), s)
		require.False(t, s.IsLive(), s)
		require.False(t, s.IsTerminal(), s)
	}
	for _, s := range live {
		require.True(t, s.IsLive(), s)
		require.False(t, s.IsPreLive(), s)
		require.False(t, s.IsTerminal(), s)
	}
	for _, s := range terminal {
		require.True(t, s.IsTerminal(), s)
		require.False(t, s.IsLive(), s)
		require.False(t, s.IsPreLive(), s)
	}

	require.False(t, StatusUnknown.IsPreLive())
	require.False(t, StatusUnknown.IsLive())
	require.False(t, StatusUnknown.IsTerminal())
}

func TestStatusCodeSets(t *testing.T) {
	require.Len(t, LiveStatusCodes(), 9)
	require.Len(t, TerminalStatusCodes(), 8)
	require.Len(t, PreLiveStatusCodes(), 2)
	require.Contains(t, LiveStatusCodes(), "HT")
	require.Contains(t, TerminalStatusCodes(), "FT")
}

func TestEventSameIdentity(t *testing.T) {
	a := Event{Elapsed: 23, Kind: EventGoal, Detail: "Normal Goal", PlayerID: 99}
	require.True(t, a.SameIdentity(a))

	b := a
	b.Comments = "header from the corner" // non-identifying field
	require.True(t, a.SameIdentity(b))

	c := a
	c.Elapsed = 24
	require.False(t, a.SameIdentity(c))

	d := a
	d.Detail = "Penalty"
	require.False(t, a.SameIdentity(d))
}

func TestGoalsOrZero(t *testing.T) {
	require.Zero(t, GoalsOrZero(nil))
	n := 3
	require.Equal(t, 3, GoalsOrZero(&n))
}
