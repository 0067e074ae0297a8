package fixture

// Status is the upstream short status code for a fixture. The set below is
// closed; any other value the provider sends is carried as StatusUnknown
// with the verbatim long text preserved in Data.StatusLong.
type Status string

const (
	// Pre-live
	StatusNotStarted      Status = "NS"
	StatusTimeToBeDefined Status = "TBD"

	// Live
	StatusFirstHalf       Status = "1H"
	StatusHalftime        Status = "HT"
	StatusSecondHalf      Status = "2H"
	StatusExtraTime       Status = "ET"
	StatusBreakTime       Status = "BT"
	StatusPenaltyShootout Status = "P"
	StatusLiveGeneric     Status = "LIVE"
	StatusSuspended       Status = "SUSP"
	StatusInterrupted     Status = "INT"

	// Terminal
	StatusFullTime       Status = "FT"
	StatusAfterExtraTime Status = "AET"
	StatusAfterPenalties Status = "PEN"
	StatusPostponed      Status = "PST"
	StatusCancelled      Status = "CANC"
	StatusAbandoned      Status = "ABD"
	StatusTechnicalLoss  Status = "AWD"
	StatusWalkOver       Status = "WO"

	StatusUnknown Status = "UNKNOWN"
)

var (
	preLiveStatuses = map[Status]bool{
		StatusNotStarted:      true,
		StatusTimeToBeDefined: true,
	}
	liveStatuses = map[Status]bool{
		StatusFirstHalf:       true,
		StatusHalftime:        true,
		StatusSecondHalf:      true,
		StatusExtraTime:       true,
		StatusBreakTime:       true,
		StatusPenaltyShootout: true,
		StatusLiveGeneric:     true,
		StatusSuspended:       true,
		StatusInterrupted:     true,
	}
	terminalStatuses = map[Status]bool{
		StatusFullTime:       true,
		StatusAfterExtraTime: true,
		StatusAfterPenalties: true,
		StatusPostponed:      true,
		StatusCancelled:      true,
		StatusAbandoned:      true,
		StatusTechnicalLoss:  true,
		StatusWalkOver:       true,
	}
)

// ParseStatus maps an upstream short code onto the closed status set.
func ParseStatus(code string) Status {
	s := Status(code)
	if preLiveStatuses[s] || liveStatuses[s] || terminalStatuses[s] {
		return s
	}
	return StatusUnknown
}

// IsPreLive reports whether the fixture has not yet started.
func (s Status) IsPreLive() bool { return preLiveStatuses[s] }

// IsLive reports whether the fixture is currently in progress.
func (s Status) IsLive() bool { return liveStatuses[s] }

// IsTerminal reports whether the fixture has reached a final state.
func (s Status) IsTerminal() bool { return terminalStatuses[s] }

// LiveStatusCodes returns the live subset as strings, for SQL ANY() params.
func LiveStatusCodes() []string { return statusCodes(liveStatuses) }

// TerminalStatusCodes returns the terminal subset as strings.
func TerminalStatusCodes() []string { return statusCodes(terminalStatuses) }

// PreLiveStatusCodes returns the pre-live subset as strings.
func PreLiveStatusCodes() []string { return statusCodes(preLiveStatuses) }

func statusCodes(set map[Status]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, string(s))
	}
	return out
}
