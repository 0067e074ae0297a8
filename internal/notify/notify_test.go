package notify

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelmensah/afcon-data/internal/broadcast"
	"github.com/kelmensah/afcon-data/internal/diff"
	"github.com/kelmensah/afcon-data/internal/fixture"
)

func intp(n int) *int { return &n }

func goalUpdate() broadcast.Update {
	return broadcast.Update{
		FixtureID: 500,
		Kind:      diff.KindGoal,
		Fixture: fixture.Data{
			ID: 500, LeagueID: 6, Season: 2025,
			Home:      fixture.Team{Name: "Nigeria"},
			Away:      fixture.Team{Name: "Egypt"},
			HomeGoals: intp(1), AwayGoals: intp(0),
		},
		Trigger: &fixture.Event{PlayerName: "V. Osimhen", Kind: fixture.EventGoal},
	}
}

func TestNewFCMSenderNilWhenUnconfigured(t *testing.T) {
	require.Nil(t, NewFCMSender("", slog.Default()))
	require.NotNil(t, NewFCMSender("creds.json", slog.Default()))
}

func TestNilSenderIsNoOp(t *testing.T) {
	var s *FCMSender
	require.NoError(t, s.SendToTopic(context.Background(), "league_6_2025", "t", "b", nil))
}

func TestCompose(t *testing.T) {
	title, body := compose(goalUpdate())
	require.Equal(t, "GOAL! V. Osimhen", title)
	require.Equal(t, "Nigeria 1 - 0 Egypt", body)

	u := goalUpdate()
	u.Kind = diff.KindRedCard
	u.Trigger = &fixture.Event{PlayerName: "M. Salah"}
	title, _ = compose(u)
	require.Equal(t, "Red card: M. Salah", title)

	u.Kind = diff.KindMatchFinished
	u.Trigger = nil
	title, body = compose(u)
	require.Equal(t, "Full time", title)
	require.Equal(t, "Nigeria 1 - 0 Egypt", body)

	u.Kind = diff.KindGoal
	u.Trigger = nil
	title, _ = compose(u)
	require.Equal(t, "GOAL!", title)
}

func TestHookSurvivesNilSender(t *testing.T) {
	hook := Hook(nil, slog.Default())
	require.NotPanics(t, func() { hook(goalUpdate()) })
}
