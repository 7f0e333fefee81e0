package sink

import (
	"sync/atomic"

	"github.com/philipp01105/logfacade/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest event when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest queued event when the queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.TraceLevel: DropNewest,
		core.DebugLevel: DropNewest,
		core.InfoLevel:  DropNewest,
		core.WarnLevel:  DropNewest,
		core.ErrorLevel: Block, // Block for errors (with timeout)
		core.FatalLevel: Block,
	}
}

const numLevels = int(core.FatalLevel) + 1

// Stats tracks sink statistics with atomic counters
type Stats struct {
	dropped   [numLevels]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped increments the dropped counter for a level. Levels
// outside TRACE..FATAL are ignored.
func (s *Stats) IncrementDropped(level core.Level) {
	if level >= 0 && int(level) < numLevels {
		s.dropped[level].Add(1)
	}
}

// IncrementBlocked increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFailed increments the failed write counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	if level < 0 || int(level) >= numLevels {
		return 0
	}
	return s.dropped[level].Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, numLevels)
	for i := range s.dropped {
		dropped[core.Level(i)] = s.dropped[i].Load()
	}
	return Snapshot{
		DroppedTotal:   dropped,
		BlockedTotal:   s.blocked.Load(),
		ProcessedTotal: s.processed.Load(),
		FailedTotal:    s.failed.Load(),
	}
}

// TotalDropped returns the dropped count across all levels
func (s Snapshot) TotalDropped() uint64 {
	var total uint64
	for _, n := range s.DroppedTotal {
		total += n
	}
	return total
}
