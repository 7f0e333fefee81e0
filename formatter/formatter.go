package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logfacade/core"
)

// Formatter renders an event into its textual form
type Formatter interface {
	// Format returns the rendered event
	Format(event *core.Event) string
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer.
type BufferFormatter interface {
	// FormatEvent appends the rendered event to buf
	FormatEvent(event *core.Event, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool `option:"includeCaller"`
	// TimestampFormat specifies the time layout (empty for the formatter default)
	TimestampFormat string `option:"timestampFormat"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// render runs fn against a pooled buffer and returns the result
func render(fn func(buf *bytes.Buffer)) string {
	buf := getBuffer()
	fn(buf)
	s := buf.String()
	putBuffer(buf)
	return s
}
