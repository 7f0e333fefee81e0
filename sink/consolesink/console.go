package consolesink

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/sink"
)

// Config holds configuration for console sinks
type Config struct {
	// Writer to write to (default: selected by Target)
	Writer io.Writer
	// Target is "stdout" or "stderr" when Writer is nil (default: stdout)
	Target string
	// Async enables asynchronous writing
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: sink.DefaultLevelPolicy)
	OverflowPolicy map[core.Level]sink.OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout bounds how long Close drains the queue (default: 5s)
	DrainTimeout time.Duration
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Detected automatically for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		if strings.EqualFold(cfg.Target, "stderr") {
			cfg.Writer = os.Stderr
		} else {
			cfg.Writer = os.Stdout
		}
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = sink.DefaultLevelPolicy()
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// New creates a console sink. It returns a *SyncSink when Async is false
// and an *AsyncSink otherwise.
func New(cfg Config) sink.Sink {
	if cfg.Async {
		return NewAsync(cfg)
	}
	return NewSync(cfg)
}
