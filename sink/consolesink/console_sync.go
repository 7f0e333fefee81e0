package consolesink

import (
	"github.com/philipp01105/logfacade/sink"
)

// SyncSink writes each line on the caller's goroutine
type SyncSink struct {
	*sink.WriterSink
}

// NewSync creates a synchronous console sink
func NewSync(cfg Config) *SyncSink {
	applyDefaults(&cfg)
	var opts []sink.WriterOption
	if cfg.ConcurrentWriter {
		opts = append(opts, sink.WithConcurrentWriter())
	}
	return &SyncSink{WriterSink: sink.NewWriterSink(cfg.Writer, opts...)}
}
