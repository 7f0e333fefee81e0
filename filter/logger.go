package filter

import (
	"strings"

	"github.com/philipp01105/logfacade/core"
)

// LoggerMatch matches events whose logger name starts with LoggerName.
// Matching is case-sensitive.
type LoggerMatch struct {
	LoggerName    string
	AcceptOnMatch bool
}

// Decide implements Filter
func (f *LoggerMatch) Decide(event *core.Event) Decision {
	if f.LoggerName == "" || !strings.HasPrefix(event.LoggerName(), f.LoggerName) {
		return Neutral
	}
	return onMatch(f.AcceptOnMatch)
}

// DenyAll drops every event. Appended at the tail of a chain it turns
// the chain's accept-by-default into deny-by-default.
type DenyAll struct{}

// Decide implements Filter
func (DenyAll) Decide(*core.Event) Decision {
	return Deny
}
