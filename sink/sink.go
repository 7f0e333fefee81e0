package sink

import (
	"errors"

	"github.com/philipp01105/logfacade/core"
)

// ErrClosed is returned by sinks that are written to after Close
var ErrClosed = errors.New("sink closed")

// Sink is the output of a destination
type Sink interface {
	// Write outputs one rendered event
	Write(rendered string) error

	// Close releases the sink's resources
	Close() error
}

// EventSink is implemented by sinks that want the event alongside its
// rendered form. rendered is empty when the destination skipped rendering.
type EventSink interface {
	WriteEvent(event *core.Event, rendered string) error
}

// Opener is implemented by sinks that can be reopened after Close
type Opener interface {
	Open() error
}

// FormatterRequirer is implemented by sinks that can work without a
// rendered string
type FormatterRequirer interface {
	RequiresFormatter() bool
}

// RequiresFormatter reports whether s needs events rendered. Sinks that do
// not implement FormatterRequirer always do.
func RequiresFormatter(s Sink) bool {
	if fr, ok := s.(FormatterRequirer); ok {
		return fr.RequiresFormatter()
	}
	return true
}

// Deliver hands an event to s, preferring WriteEvent when available
func Deliver(s Sink, event *core.Event, rendered string) error {
	if es, ok := s.(EventSink); ok {
		return es.WriteEvent(event, rendered)
	}
	return s.Write(rendered)
}

// Open calls Open on s if it implements Opener
func Open(s Sink) error {
	if o, ok := s.(Opener); ok {
		return o.Open()
	}
	return nil
}
