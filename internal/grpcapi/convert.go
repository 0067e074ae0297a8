package grpcapi

import (
	"github.com/kelmensah/afcon-data/internal/broadcast"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/pb"
)

// Domain to wire conversions. Score and clock pointers collapse to zero
// values on the wire; absence is not distinguishable from 0 there.

func intOrZero(n *int) int32 {
	if n == nil {
		return 0
	}
	return int32(*n)
}

func teamToPB(t fixture.Team) *pb.Team {
	winner := false
	if t.Winner != nil {
		winner = *t.Winner
	}
	return &pb.Team{
		Id:     int32(t.ID),
		Name:   t.Name,
		Logo:   t.Logo,
		Winner: winner,
	}
}

func statusToPB(f fixture.Data) *pb.MatchStatus {
	return &pb.MatchStatus{
		Short:   string(f.StatusShort),
		Long:    f.StatusLong,
		Elapsed: intOrZero(f.Elapsed),
		Extra:   intOrZero(f.Extra),
	}
}

func fixtureToPB(f fixture.Data) *pb.Fixture {
	return &pb.Fixture{
		Id:           int32(f.ID),
		LeagueId:     int32(f.LeagueID),
		Season:       int32(f.Season),
		Competition:  f.Competition,
		KickoffUnix:  f.Kickoff.Unix(),
		Status:       statusToPB(f),
		Home:         teamToPB(f.Home),
		Away:         teamToPB(f.Away),
		HomeGoals:    intOrZero(f.HomeGoals),
		AwayGoals:    intOrZero(f.AwayGoals),
		HalftimeHome: intOrZero(f.HalftimeH),
		HalftimeAway: intOrZero(f.HalftimeA),
		FulltimeHome: intOrZero(f.FulltimeH),
		FulltimeAway: intOrZero(f.FulltimeA),
		Venue:        f.Venue,
		Referee:      f.Referee,
	}
}

func fixturesToPB(fs []fixture.Data) []*pb.Fixture {
	out := make([]*pb.Fixture, 0, len(fs))
	for _, f := range fs {
		out = append(out, fixtureToPB(f))
	}
	return out
}

func eventToPB(e fixture.Event) *pb.MatchEvent {
	return &pb.MatchEvent{
		Elapsed:    int32(e.Elapsed),
		Extra:      int32(e.Extra),
		TeamId:     int32(e.TeamID),
		TeamName:   e.TeamName,
		PlayerId:   int32(e.PlayerID),
		PlayerName: e.PlayerName,
		AssistId:   int32(e.AssistID),
		AssistName: e.AssistName,
		Type:       string(e.Kind),
		Detail:     e.Detail,
		Comments:   e.Comments,
	}
}

func eventsToPB(es []fixture.Event) []*pb.MatchEvent {
	if len(es) == 0 {
		return nil
	}
	out := make([]*pb.MatchEvent, 0, len(es))
	for _, e := range es {
		out = append(out, eventToPB(e))
	}
	return out
}

func updateToPB(u broadcast.Update) *pb.LiveMatchUpdate {
	msg := &pb.LiveMatchUpdate{
		FixtureId:       int32(u.FixtureID),
		EmittedAtUnixMs: u.EmittedAt.UnixMilli(),
		EventType:       u.Kind.String(),
		Fixture:         fixtureToPB(u.Fixture),
		Status:          statusToPB(u.Fixture),
		Events:          eventsToPB(u.Events),
	}
	if u.Trigger != nil {
		msg.Event = eventToPB(*u.Trigger)
	}
	return msg
}

func standingRowToPB(r fixture.StandingRow) *pb.StandingRow {
	return &pb.StandingRow{
		Rank:         int32(r.Rank),
		Team:         teamToPB(r.Team),
		Points:       int32(r.Points),
		GoalsDiff:    int32(r.GoalsDiff),
		Played:       int32(r.Played),
		Win:          int32(r.Win),
		Draw:         int32(r.Draw),
		Lose:         int32(r.Lose),
		GoalsFor:     int32(r.GoalsFor),
		GoalsAgainst: int32(r.GoalsAgainst),
		Form:         r.Form,
		Description:  r.Description,
	}
}

func standingsToPB(groups []fixture.StandingGroup) []*pb.StandingGroup {
	out := make([]*pb.StandingGroup, 0, len(groups))
	for _, g := range groups {
		rows := make([]*pb.StandingRow, 0, len(g.Rows))
		for _, r := range g.Rows {
			rows = append(rows, standingRowToPB(r))
		}
		out = append(out, &pb.StandingGroup{Name: g.Name, Rows: rows})
	}
	return out
}
