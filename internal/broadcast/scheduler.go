package broadcast

import (
	"time"
)

// Intervals are the poll scheduler boundaries. The zero value is unusable;
// use DefaultIntervals or populate from config.
type Intervals struct {
	Live    time.Duration // live matches in progress, or paused pulse
	Near    time.Duration // kickoff within 10 minutes .. 1 hour
	Hour    time.Duration // kickoff within 1 .. 6 hours
	SixHour time.Duration // kickoff within 6 .. 24 hours
	Far     time.Duration // kickoff more than 24 hours out
	Unknown time.Duration // no upcoming fixture known
}

// DefaultIntervals returns the documented production boundaries.
func DefaultIntervals() Intervals {
	return Intervals{
		Live:    15 * time.Second,
		Near:    5 * time.Minute,
		Hour:    30 * time.Minute,
		SixHour: 3 * time.Hour,
		Far:     12 * time.Hour,
		Unknown: 24 * time.Hour,
	}
}

// halftimeBreak is how long after entering halftime play resumes, minus a
// small head start so the first second-half tick is not missed.
const (
	halftimeBreak     = 14 * time.Minute
	halftimeHeadStart = 30 * time.Second
)

// NextSleep computes how long the poller sleeps before its next tick.
//
// Live matches (and the paused pulse) poll at the shortest interval. With
// nothing live, the sleep grows with the distance to the next kickoff; an
// unknown schedule backs off to the longest interval. When every live
// fixture sits in the halftime break, the poller sleeps through most of it
// instead of burning quota on a static score.
func (iv Intervals) NextSleep(paused bool, liveCount int, halftimeSince *time.Time, nextKickoff *time.Time, now time.Time) time.Duration {
	if paused {
		return iv.Live
	}

	if liveCount > 0 {
		if halftimeSince != nil {
			wake := halftimeSince.Add(halftimeBreak - halftimeHeadStart)
			if d := wake.Sub(now); d > iv.Live {
				return d
			}
		}
		return iv.Live
	}

	if nextKickoff == nil {
		return iv.Unknown
	}

	until := nextKickoff.Sub(now)
	switch {
	case until > 24*time.Hour:
		return iv.Far
	case until > 6*time.Hour:
		return iv.SixHour
	case until > time.Hour:
		return iv.Hour
	case until > 10*time.Minute:
		return iv.Near
	case until > 0:
		return iv.Live
	default:
		// Kickoff has passed but nothing is live yet; poll tightly until
		// the match shows up in the live feed.
		return iv.Live
	}
}
