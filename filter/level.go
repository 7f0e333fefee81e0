package filter

import (
	"github.com/philipp01105/logfacade/core"
)

// LevelMatch matches one exact level. An unset level is NEUTRAL for every
// event.
type LevelMatch struct {
	Level         core.Level
	Set           bool
	AcceptOnMatch bool
}

// NewLevelMatch creates a LevelMatch filter for level
func NewLevelMatch(level core.Level, acceptOnMatch bool) *LevelMatch {
	return &LevelMatch{Level: level, Set: true, AcceptOnMatch: acceptOnMatch}
}

// Decide implements Filter
func (f *LevelMatch) Decide(event *core.Event) Decision {
	if !f.Set || event.Level() != f.Level {
		return Neutral
	}
	return onMatch(f.AcceptOnMatch)
}

// LevelRange denies events outside [Min, Max]. Events inside the range
// are accepted when AcceptOnMatch is set and passed on otherwise, so the
// range can be combined with later filters.
type LevelRange struct {
	Min, Max       core.Level
	HasMin, HasMax bool
	AcceptOnMatch  bool
}

// Decide implements Filter
func (f *LevelRange) Decide(event *core.Event) Decision {
	l := event.Level()
	if f.HasMin && !l.IsAtLeastAsSevereAs(f.Min) {
		return Deny
	}
	if f.HasMax && l.Weight() > f.Max.Weight() {
		return Deny
	}
	if f.AcceptOnMatch {
		return Accept
	}
	return Neutral
}
