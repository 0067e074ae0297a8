// Package diff classifies inter-poll fixture deltas into typed updates.
// Everything here is a pure function of its inputs; the broadcaster owns
// the per-fixture memory of prior state.
package diff

import (
	"sort"
	"strings"

	"github.com/kelmensah/afcon-data/internal/fixture"
)

// Kind is the typed classification of a live update. The wire carries the
// string form; keep the enum internal and stringify only at the edge.
type Kind int

const (
	KindTimeUpdate Kind = iota
	KindStatusUpdate
	KindGoal
	KindMissedPenalty
	KindYellowCard
	KindRedCard
	KindCard
	KindSubstitution
	KindVAR
	KindMatchStarted
	KindMatchFinished
)

var kindNames = map[Kind]string{
	KindTimeUpdate:    "time_update",
	KindStatusUpdate:  "status_update",
	KindGoal:          "goal",
	KindMissedPenalty: "missed_penalty",
	KindYellowCard:    "yellow_card",
	KindRedCard:       "red_card",
	KindCard:          "card",
	KindSubstitution:  "substitution",
	KindVAR:           "var",
	KindMatchStarted:  "match_started",
	KindMatchFinished: "match_finished",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "time_update"
}

// HasSignificantChanges reports whether cur differs from prev in a way
// subscribers care about: score, status, event set, or live elapsed time
// advancing by at least a minute.
func HasSignificantChanges(prev, cur fixture.Data, prevEvents, curEvents []fixture.Event) bool {
	if fixture.GoalsOrZero(cur.HomeGoals) != fixture.GoalsOrZero(prev.HomeGoals) ||
		fixture.GoalsOrZero(cur.AwayGoals) != fixture.GoalsOrZero(prev.AwayGoals) {
		return true
	}
	if cur.StatusShort != prev.StatusShort {
		return true
	}
	if len(curEvents) != len(prevEvents) || len(NewEvents(prevEvents, curEvents)) > 0 {
		return true
	}
	if cur.StatusShort.IsLive() && elapsedOrZero(cur) >= elapsedOrZero(prev)+1 {
		return true
	}
	return false
}

// DetectEventType classifies the delta between prev and cur. New events win
// over score changes, score changes over status changes, and an otherwise
// unexplained delta is a time update.
func DetectEventType(prev, cur fixture.Data, prevEvents, curEvents []fixture.Event) Kind {
	newEvents := NewEvents(prevEvents, curEvents)

	for _, e := range newEvents {
		if e.Kind == fixture.EventGoal {
			if strings.Contains(strings.ToLower(e.Detail), "missed") {
				return KindMissedPenalty
			}
			return KindGoal
		}
	}
	for _, e := range newEvents {
		if e.Kind == fixture.EventCard {
			detail := strings.ToLower(e.Detail)
			if strings.Contains(detail, "red") || strings.Contains(detail, "second yellow") {
				return KindRedCard
			}
			return KindYellowCard
		}
	}
	for _, e := range newEvents {
		if e.Kind == fixture.EventSubstitution {
			return KindSubstitution
		}
	}
	for _, e := range newEvents {
		if e.Kind == fixture.EventVAR {
			return KindVAR
		}
	}

	if fixture.GoalsOrZero(cur.HomeGoals) != fixture.GoalsOrZero(prev.HomeGoals) ||
		fixture.GoalsOrZero(cur.AwayGoals) != fixture.GoalsOrZero(prev.AwayGoals) {
		return KindGoal
	}
	if cur.StatusShort != prev.StatusShort {
		return KindStatusUpdate
	}
	return KindTimeUpdate
}

// NewEvents returns the events in cur that have no identity match in prev,
// preserving cur's order. At-most-once per identity tuple per fixture.
func NewEvents(prev, cur []fixture.Event) []fixture.Event {
	var fresh []fixture.Event
	for _, c := range cur {
		seen := false
		for _, p := range prev {
			if c.SameIdentity(p) {
				seen = true
				break
			}
		}
		if !seen {
			fresh = append(fresh, c)
		}
	}
	return fresh
}

// RecentEvents returns the full event list sorted ascending by match time
// (elapsed + extra). The name is historical; callers receive everything.
func RecentEvents(events []fixture.Event) []fixture.Event {
	out := make([]fixture.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Elapsed+out[i].Extra < out[j].Elapsed+out[j].Extra
	})
	return out
}

// EventsEqual reports identity equality between two events.
func EventsEqual(a, b fixture.Event) bool {
	return a.SameIdentity(b)
}

func elapsedOrZero(f fixture.Data) int {
	if f.Elapsed == nil {
		return 0
	}
	return *f.Elapsed
}
