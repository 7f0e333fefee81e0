package consolesink

import (
	"sync/atomic"
	"time"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/sink"
)

type queued struct {
	level core.Level
	line  string
}

// worker is one generation of the background writer. A new worker is
// started by every Open after Close.
type worker struct {
	queue   chan queued
	closing chan struct{}
	done    chan struct{}
}

// AsyncSink queues lines and writes them from a background goroutine
type AsyncSink struct {
	out            *sink.WriterSink
	stats          *sink.Stats
	bufferSize     int
	overflowPolicy map[core.Level]sink.OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	current        atomic.Pointer[worker]
}

// NewAsync creates an asynchronous console sink and starts its worker
func NewAsync(cfg Config) *AsyncSink {
	applyDefaults(&cfg)
	var opts []sink.WriterOption
	if cfg.ConcurrentWriter {
		opts = append(opts, sink.WithConcurrentWriter())
	}
	s := &AsyncSink{
		out:            sink.NewWriterSink(cfg.Writer, opts...),
		stats:          sink.NewStats(),
		bufferSize:     cfg.BufferSize,
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
	}
	_ = s.Open()
	return s
}

// Open starts the background worker if it is not running
func (s *AsyncSink) Open() error {
	if s.current.Load() != nil {
		return nil
	}
	w := &worker{
		queue:   make(chan queued, s.bufferSize),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	if s.current.CompareAndSwap(nil, w) {
		go s.process(w)
	}
	return nil
}

// Write queues a line using the INFO overflow policy
func (s *AsyncSink) Write(rendered string) error {
	return s.enqueue(queued{level: core.InfoLevel, line: rendered})
}

// WriteEvent queues a line using the overflow policy of the event's level
func (s *AsyncSink) WriteEvent(event *core.Event, rendered string) error {
	return s.enqueue(queued{level: event.Level(), line: rendered})
}

func (s *AsyncSink) enqueue(q queued) error {
	w := s.current.Load()
	if w == nil {
		return sink.ErrClosed
	}
	return s.enqueueTo(w, q)
}

// enqueueTo queues q on w, which may have been swapped out by a Close
// since it was loaded
func (s *AsyncSink) enqueueTo(w *worker, q queued) error {
	policy, ok := s.overflowPolicy[q.level]
	if !ok {
		policy = sink.DropNewest
	}

	select {
	case w.queue <- q:
		s.flushStale(w)
		return nil
	default:
	}

	switch policy {
	case sink.Block:
		timer := time.NewTimer(s.blockTimeout)
		defer timer.Stop()
		select {
		case w.queue <- q:
			s.flushStale(w)
			return nil
		case <-timer.C:
			// Timeout - fall back to synchronous write
			s.stats.IncrementBlocked()
			return s.write(q)
		case <-w.closing:
			return s.write(q)
		}

	case sink.DropOldest:
		select {
		case old := <-w.queue:
			s.stats.IncrementDropped(old.level)
		default:
		}
		select {
		case w.queue <- q:
			s.flushStale(w)
		default:
			// Still full, drop this one
			s.stats.IncrementDropped(q.level)
		}
		return nil

	default:
		s.stats.IncrementDropped(q.level)
		return nil
	}
}

func (s *AsyncSink) write(q queued) error {
	err := s.out.Write(q.line)
	if err != nil {
		s.stats.IncrementFailed()
		return err
	}
	s.stats.IncrementProcessed()
	return nil
}

// flushStale writes lines left in the queue of a closing worker once its
// drain has finished. Lines queued while Close runs would otherwise sit in
// a queue nobody reads.
func (s *AsyncSink) flushStale(w *worker) {
	select {
	case <-w.closing:
	default:
		return
	}
	<-w.done
	for {
		select {
		case q := <-w.queue:
			_ = s.write(q)
		default:
			return
		}
	}
}

// process drains the worker's queue until it is closed
func (s *AsyncSink) process(w *worker) {
	defer close(w.done)

	for {
		select {
		case q := <-w.queue:
			_ = s.write(q)
		case <-w.closing:
			deadline := time.NewTimer(s.drainTimeout)
			defer deadline.Stop()
			for {
				select {
				case q := <-w.queue:
					_ = s.write(q)
				case <-deadline.C:
					return
				default:
					return
				}
			}
		}
	}
}

// Close stops the worker after draining the queue. It is safe to call
// more than once.
func (s *AsyncSink) Close() error {
	w := s.current.Swap(nil)
	if w == nil {
		return nil
	}
	close(w.closing)
	<-w.done
	return nil
}

// Stats returns a snapshot of the current statistics
func (s *AsyncSink) Stats() sink.Snapshot {
	return s.stats.GetSnapshot()
}
