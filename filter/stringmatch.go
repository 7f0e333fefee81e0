package filter

import (
	"strings"

	"github.com/philipp01105/logfacade/core"
)

// StringMatch matches a substring of the event message. On a match it
// returns ACCEPT when AcceptOnMatch is set and DENY otherwise. No match,
// an empty message or an empty needle all yield NEUTRAL.
type StringMatch struct {
	StringToMatch string
	AcceptOnMatch bool
}

// NewStringMatch creates a StringMatch filter
func NewStringMatch(s string, acceptOnMatch bool) *StringMatch {
	return &StringMatch{StringToMatch: s, AcceptOnMatch: acceptOnMatch}
}

// Decide implements Filter
func (f *StringMatch) Decide(event *core.Event) Decision {
	msg := event.Message()
	if msg == "" || f.StringToMatch == "" {
		return Neutral
	}
	if strings.Contains(msg, f.StringToMatch) {
		return onMatch(f.AcceptOnMatch)
	}
	return Neutral
}

func onMatch(accept bool) Decision {
	if accept {
		return Accept
	}
	return Deny
}
