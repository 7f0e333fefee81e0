// Package consolesink provides synchronous and asynchronous console
// sinks.
//
// The synchronous sink writes on the caller's goroutine. The async sink
// hands lines to a bounded queue drained by one background goroutine and
// applies a per-level sink.OverflowPolicy when the queue is full. Close
// drains the queue for at most DrainTimeout; Open starts a fresh worker
// so a destination can be reactivated after Close.
package consolesink
