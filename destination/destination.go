package destination

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/filter"
	"github.com/philipp01105/logfacade/formatter"
	"github.com/philipp01105/logfacade/sink"
)

var (
	// ErrNoSink is returned by Activate when the destination has no sink
	ErrNoSink = errors.New("destination has no sink")
	// ErrInvalidThreshold is returned for thresholds outside the level set
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// Destination filters, renders and forwards events to one sink. All
// methods are safe for concurrent use. Configuration methods take an
// exclusive lock and therefore wait for in-flight dispatches.
type Destination struct {
	name string
	sink sink.Sink
	diag *zap.Logger

	// closed is read without the lock on the fast path and re-checked
	// under it
	closed atomic.Bool

	mu           sync.RWMutex
	released     bool // sink closed by Close and not reopened yet
	threshold    core.Level
	hasThreshold bool
	chain        *filter.Chain
	layout       formatter.Formatter
	pattern      string
	active       formatter.Formatter // resolved layout, nil when rendering is skipped

	stats Stats
}

// New creates a destination writing to s. The destination is not ready
// until Activate succeeds.
func New(name string, s sink.Sink, opts ...Option) *Destination {
	d := &Destination{
		name:  name,
		sink:  s,
		diag:  zap.NewNop(),
		chain: filter.NewChain(),
	}
	d.closed.Store(true)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the destination name
func (d *Destination) Name() string {
	return d.name
}

// Sink returns the underlying sink
func (d *Destination) Sink() sink.Sink {
	return d.sink
}

// SetThreshold sets the minimum level an event needs to be considered
func (d *Destination) SetThreshold(level core.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, level)
	}
	d.mu.Lock()
	d.threshold = level
	d.hasThreshold = true
	d.mu.Unlock()
	return nil
}

// ClearThreshold removes the threshold so every level passes
func (d *Destination) ClearThreshold() {
	d.mu.Lock()
	d.hasThreshold = false
	d.mu.Unlock()
}

// Threshold returns the threshold and whether one is set
func (d *Destination) Threshold() (core.Level, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.threshold, d.hasThreshold
}

// AddFilter appends f to the end of the filter chain
func (d *Destination) AddFilter(f filter.Filter) {
	d.mu.Lock()
	d.chain.Add(f)
	d.mu.Unlock()
}

// ClearFilters removes every filter
func (d *Destination) ClearFilters() {
	d.mu.Lock()
	d.chain.Clear()
	d.mu.Unlock()
}

// Filters returns a copy of the filter chain in evaluation order
func (d *Destination) Filters() []filter.Filter {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.chain.Filters()
}

// SetFormatter sets the layout. It applies immediately to an active
// destination. A nil formatter restores the default layout.
func (d *Destination) SetFormatter(f formatter.Formatter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.layout = f
	d.pattern = ""
	d.active = d.resolveLayout(nil)
}

// SetPattern sets a conversion pattern. It is compiled, and replaces the
// current layout, on the next Activate.
func (d *Destination) SetPattern(p string) {
	d.mu.Lock()
	d.pattern = p
	d.layout = nil
	d.mu.Unlock()
}

// resolveLayout picks the layout used for rendering. compiled is the
// pattern formatter built by Activate, if any.
func (d *Destination) resolveLayout(compiled formatter.Formatter) formatter.Formatter {
	switch {
	case compiled != nil:
		return compiled
	case d.layout != nil:
		return d.layout
	case d.sink != nil && !sink.RequiresFormatter(d.sink):
		return nil
	default:
		return formatter.SimpleFormatter{}
	}
}

// Activate validates the configuration, compiles the pattern and opens
// the sink. On error the destination stays closed.
func (d *Destination) Activate() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sink == nil {
		return fmt.Errorf("destination %s: %w", d.name, ErrNoSink)
	}
	if d.hasThreshold && !d.threshold.Valid() {
		return fmt.Errorf("destination %s: %w: %d", d.name, ErrInvalidThreshold, d.threshold)
	}

	var compiled formatter.Formatter
	if d.pattern != "" {
		pf, err := formatter.NewPatternFormatter(d.pattern)
		if err != nil {
			return fmt.Errorf("destination %s: %w", d.name, err)
		}
		compiled = pf
	}

	if err := sink.Open(d.sink); err != nil {
		return fmt.Errorf("destination %s: open sink: %w", d.name, err)
	}
	d.released = false
	d.active = d.resolveLayout(compiled)
	d.closed.Store(false)

	d.diag.Debug("destination activated",
		zap.String("destination", d.name),
		zap.Bool("rendering", d.active != nil),
		zap.Int("filters", d.chain.Len()),
	)
	return nil
}

// Decide runs the decision steps for event without rendering or writing
func (d *Destination) Decide(event *core.Event) Outcome {
	if d.closed.Load() {
		return Closed
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.decideLocked(event)
}

func (d *Destination) decideLocked(event *core.Event) Outcome {
	if d.closed.Load() {
		return Closed
	}
	if d.hasThreshold && !event.Level().IsAtLeastAsSevereAs(d.threshold) {
		return BelowThreshold
	}
	if d.chain.Decide(event) == filter.Deny {
		return Denied
	}
	return Accepted
}

// Handle dispatches event. Dropped events are not errors; only a failed
// sink write is returned.
func (d *Destination) Handle(event *core.Event) error {
	if d.closed.Load() {
		d.stats.record(Closed)
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	outcome := d.decideLocked(event)
	if outcome != Accepted {
		d.stats.record(outcome)
		return nil
	}

	var rendered string
	if d.active != nil {
		rendered = d.active.Format(event)
	}
	if err := sink.Deliver(d.sink, event, rendered); err != nil {
		d.stats.failed.Add(1)
		d.diag.Warn("sink write failed",
			zap.String("destination", d.name),
			zap.Error(err),
		)
		return fmt.Errorf("destination %s: %w", d.name, err)
	}
	d.stats.written.Add(1)
	return nil
}

// Close stops dispatching and closes the sink. It waits for dispatches
// already rendering and is safe to call more than once.
func (d *Destination) Close() error {
	d.closed.Store(true)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released || d.sink == nil {
		return nil
	}
	d.released = true
	err := d.sink.Close()
	if err != nil {
		d.diag.Warn("sink close failed", zap.String("destination", d.name), zap.Error(err))
		return fmt.Errorf("destination %s: %w", d.name, err)
	}
	d.diag.Debug("destination closed", zap.String("destination", d.name))
	return nil
}

// IsClosed reports whether the destination drops every event
func (d *Destination) IsClosed() bool {
	return d.closed.Load()
}

// Stats returns a snapshot of the dispatch counters
func (d *Destination) Stats() Snapshot {
	return d.stats.snapshot()
}
