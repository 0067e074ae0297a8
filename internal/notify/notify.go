// Package notify turns selected broadcast updates (goals, red cards, full
// time) into push notifications on per-league FCM topics.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelmensah/afcon-data/internal/broadcast"
	"github.com/kelmensah/afcon-data/internal/diff"
	"github.com/kelmensah/afcon-data/internal/fixture"
)

const sendTimeout = 10 * time.Second

// FCMSender sends push notifications via Firebase Cloud Messaging.
// Nil-safe: when not configured, all methods are no-ops.
type FCMSender struct {
	credentialsFile string
	logger          *slog.Logger
	// TODO: Add firebase.google.com/go/v4/messaging.Client when FCM
	// dependency is added. For now this is a structured placeholder
	// that logs send attempts.
}

// NewFCMSender creates an FCM sender from a service account credentials file.
// Returns nil if credentialsFile is empty (notifications disabled).
func NewFCMSender(credentialsFile string, logger *slog.Logger) *FCMSender {
	if credentialsFile == "" {
		return nil
	}
	return &FCMSender{
		credentialsFile: credentialsFile,
		logger:          logger,
	}
}

// SendToTopic pushes one notification to an FCM topic.
// When the FCM client is integrated, this will call Send with a topic target.
// Currently logs the send for development/testing.
func (s *FCMSender) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if s == nil {
		return nil // no-op when not configured
	}

	// TODO: Replace with actual FCM client call:
	//   msg := &messaging.Message{
	//       Topic:        topic,
	//       Notification: &messaging.Notification{Title: title, Body: body},
	//       Data:         data,
	//   }
	//   resp, err := s.client.Send(ctx, msg)

	s.logger.Info("FCM send (pending integration)",
		"topic", topic, "title", title, "body", body)
	return nil
}

// Hook adapts the sender to the broadcaster's notify callback. The
// broadcaster already filters to goal, red card, and full-time updates.
func Hook(sender *FCMSender, logger *slog.Logger) broadcast.NotifyFunc {
	return func(u broadcast.Update) {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		topic := fmt.Sprintf("league_%d_%d", u.Fixture.LeagueID, u.Fixture.Season)
		title, body := compose(u)
		data := map[string]string{
			"fixture_id": fmt.Sprintf("%d", u.FixtureID),
			"event_type": u.Kind.String(),
		}
		if err := sender.SendToTopic(ctx, topic, title, body, data); err != nil {
			logger.Warn("Push send failed", "topic", topic, "fixture_id", u.FixtureID, "error", err)
		}
	}
}

func compose(u broadcast.Update) (title, body string) {
	f := u.Fixture
	scoreline := fmt.Sprintf("%s %d - %d %s",
		f.Home.Name, fixture.GoalsOrZero(f.HomeGoals),
		fixture.GoalsOrZero(f.AwayGoals), f.Away.Name)

	switch u.Kind {
	case diff.KindGoal:
		title = "GOAL!"
		if u.Trigger != nil && u.Trigger.PlayerName != "" {
			title = fmt.Sprintf("GOAL! %s", u.Trigger.PlayerName)
		}
		return title, scoreline
	case diff.KindRedCard:
		title = "Red card"
		if u.Trigger != nil && u.Trigger.PlayerName != "" {
			title = fmt.Sprintf("Red card: %s", u.Trigger.PlayerName)
		}
		return title, scoreline
	case diff.KindMatchFinished:
		return "Full time", scoreline
	default:
		return f.Competition, scoreline
	}
}
