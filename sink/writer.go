package sink

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// WriterSink writes rendered events to an io.Writer. Writes are
// serialized unless the writer is known to be safe for concurrent use.
type WriterSink struct {
	mu             sync.Mutex
	w              io.Writer
	concurrentSafe bool
	closeWriter    bool
	closed         atomic.Bool
	stats          *Stats
}

// WriterOption configures a WriterSink
type WriterOption func(*WriterSink)

// WithConcurrentWriter marks the writer as safe for concurrent Write calls.
// It is detected automatically for io.Discard and *os.File.
func WithConcurrentWriter() WriterOption {
	return func(s *WriterSink) { s.concurrentSafe = true }
}

// WithCloseWriter makes Close also close the writer when it is an io.Closer
func WithCloseWriter() WriterOption {
	return func(s *WriterSink) { s.closeWriter = true }
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer, opts ...WriterOption) *WriterSink {
	s := &WriterSink{
		w:              w,
		concurrentSafe: IsConcurrentSafeWriter(w),
		stats:          NewStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing sinks to skip write-level locking.
func IsConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Write implements Sink
func (s *WriterSink) Write(rendered string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	var err error
	if s.concurrentSafe {
		_, err = io.WriteString(s.w, rendered)
	} else {
		s.mu.Lock()
		_, err = io.WriteString(s.w, rendered)
		s.mu.Unlock()
	}
	if err != nil {
		s.stats.IncrementFailed()
		return err
	}
	s.stats.IncrementProcessed()
	return nil
}

// Open makes a closed sink writable again. A writer closed by
// WithCloseWriter stays closed and Write reports its error.
func (s *WriterSink) Open() error {
	s.closed.Store(false)
	return nil
}

// Close implements Sink
func (s *WriterSink) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c, ok := s.w.(io.Closer); ok && s.closeWriter {
		s.mu.Lock()
		defer s.mu.Unlock()
		return c.Close()
	}
	return nil
}

// Stats returns a snapshot of the sink's counters
func (s *WriterSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}
