// Package fixture holds the football fixture domain model and the
// authoritative Postgres-backed store. Schedule questions ("when is the
// next match?") are answered by the repository, not the upstream API;
// poll ticks converge live state into it through idempotent upserts.
package fixture

import (
	"time"
)

// Team identifies one side of a fixture.
type Team struct {
	ID     int
	Name   string
	Logo   string
	Winner *bool
}

// Data is a fixture snapshot as observed from the upstream provider.
// ID is the upstream-assigned fixture ID and is globally unique.
type Data struct {
	ID           int
	LeagueID     int
	Season       int
	Competition  string
	Kickoff      time.Time // absolute, UTC
	StatusShort  Status
	StatusLong   string
	Elapsed      *int
	Extra        *int
	Home         Team
	Away         Team
	HomeGoals    *int
	AwayGoals    *int
	HalftimeH    *int
	HalftimeA    *int
	FulltimeH    *int
	FulltimeA    *int
	PeriodFirst  *time.Time
	PeriodSecond *time.Time
	Venue        string
	Referee      string
}

// Event is a discrete in-match occurrence (goal, card, substitution, VAR).
// The upstream assigns no stable event IDs; identity is the tuple
// (Elapsed, Extra, Kind, Detail, PlayerID).
type Event struct {
	Elapsed    int
	Extra      int
	TeamID     int
	TeamName   string
	PlayerID   int
	PlayerName string
	AssistID   int
	AssistName string
	Kind       EventKind
	Detail     string
	Comments   string
}

// EventKind is the upstream event category.
type EventKind string

const (
	EventGoal         EventKind = "Goal"
	EventCard         EventKind = "Card"
	EventSubstitution EventKind = "subst"
	EventVAR          EventKind = "Var"
	EventOther        EventKind = "Other"
)

// SameIdentity reports whether two events refer to the same occurrence,
// by the identifying tuple.
func (e Event) SameIdentity(o Event) bool {
	return e.Elapsed == o.Elapsed &&
		e.Extra == o.Extra &&
		e.Kind == o.Kind &&
		e.Detail == o.Detail &&
		e.PlayerID == o.PlayerID
}

// StandingRow is one team's row in a league table.
type StandingRow struct {
	Rank         int
	Team         Team
	Points       int
	GoalsDiff    int
	Played       int
	Win          int
	Draw         int
	Lose         int
	GoalsFor     int
	GoalsAgainst int
	Form         string
	Description  string
}

// StandingGroup is a named table section (a group stage group, or the
// single overall table for a league phase).
type StandingGroup struct {
	Name string
	Rows []StandingRow
}

// GoalsOrZero returns a score pointer's value, treating nil as 0.
func GoalsOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
