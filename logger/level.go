package logger

import (
	"github.com/philipp01105/logfacade/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	AllLevel   = core.AllLevel
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	OffLevel   = core.OffLevel
)

// ParseLevel converts a string to a Level. Unknown names are an error.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
