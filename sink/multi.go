package sink

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/logfacade/core"
)

// MultiSink sends each event to multiple sinks. Every child is written
// even when an earlier one fails and the errors are combined.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink. Nil sinks are skipped.
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Write implements Sink
func (m *MultiSink) Write(rendered string) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Write(rendered))
	}
	return err
}

// WriteEvent implements EventSink, passing the event on to children that
// accept it
func (m *MultiSink) WriteEvent(event *core.Event, rendered string) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, Deliver(s, event, rendered))
	}
	return err
}

// RequiresFormatter is true when any child needs a rendered string
func (m *MultiSink) RequiresFormatter() bool {
	for _, s := range m.sinks {
		if RequiresFormatter(s) {
			return true
		}
	}
	return false
}

// Open reopens every child that supports it
func (m *MultiSink) Open() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, Open(s))
	}
	return err
}

// Close closes all sinks
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
