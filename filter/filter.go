package filter

import (
	"github.com/philipp01105/logfacade/core"
)

// Decision is the outcome of a filter for one event
type Decision int8

const (
	// Deny drops the event immediately
	Deny Decision = iota - 1
	// Neutral defers to the next filter in the chain
	Neutral
	// Accept forwards the event, skipping the remaining filters
	Accept
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case Deny:
		return "DENY"
	case Neutral:
		return "NEUTRAL"
	case Accept:
		return "ACCEPT"
	default:
		return "UNKNOWN"
	}
}

// Filter decides whether an event should reach a destination's output.
// Implementations must be safe for concurrent use once configured.
type Filter interface {
	Decide(event *core.Event) Decision
}

// Func adapts a function to the Filter interface.
type Func func(event *core.Event) Decision

// Decide calls f(event)
func (f Func) Decide(event *core.Event) Decision {
	return f(event)
}
