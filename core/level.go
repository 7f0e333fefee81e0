package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown level")

// Level represents the severity level of an event. Levels are totally
// ordered by weight; a higher weight is more severe.
type Level int8

const (
	// AllLevel is the lowest possible threshold, every event passes it
	AllLevel Level = iota - 1
	// TraceLevel for very fine grained diagnostics
	TraceLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages
	FatalLevel
	// OffLevel is the highest possible threshold, no event passes it
	OffLevel
)

var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
	OffLevel:   "OFF",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l == AllLevel {
		return "ALL"
	}
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Weight returns the numeric weight used for ordering.
func (l Level) Weight() int {
	return int(l)
}

// Valid reports whether l is one of the named levels, ALL and OFF included.
func (l Level) Valid() bool {
	return l >= AllLevel && l <= OffLevel
}

// IsAtLeastAsSevereAs reports whether l is at least as severe as threshold.
// It is reflexive and never fails for valid levels.
func (l Level) IsAtLeastAsSevereAs(threshold Level) bool {
	return l.Weight() >= threshold.Weight()
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and surrounding whitespace is ignored. Unknown names return ErrUnknownLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALL":
		return AllLevel, nil
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "OFF":
		return OffLevel, nil
	default:
		return AllLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MustParseLevel is like ParseLevel but panics on error. It is meant for
// package-level variables and tests.
func MustParseLevel(s string) Level {
	l, err := ParseLevel(s)
	if err != nil {
		panic(err)
	}
	return l
}
