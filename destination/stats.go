package destination

import "sync/atomic"

// Stats counts dispatch outcomes of a destination
type Stats struct {
	closed         atomic.Uint64
	belowThreshold atomic.Uint64
	denied         atomic.Uint64
	written        atomic.Uint64
	failed         atomic.Uint64
}

func (s *Stats) record(o Outcome) {
	switch o {
	case Closed:
		s.closed.Add(1)
	case BelowThreshold:
		s.belowThreshold.Add(1)
	case Denied:
		s.denied.Add(1)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	DroppedClosed    uint64
	DroppedThreshold uint64
	DroppedDenied    uint64
	Written          uint64
	Failed           uint64
}

// Handled returns the number of events passed to Handle
func (s Snapshot) Handled() uint64 {
	return s.DroppedClosed + s.DroppedThreshold + s.DroppedDenied + s.Written + s.Failed
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		DroppedClosed:    s.closed.Load(),
		DroppedThreshold: s.belowThreshold.Load(),
		DroppedDenied:    s.denied.Load(),
		Written:          s.written.Load(),
		Failed:           s.failed.Load(),
	}
}
