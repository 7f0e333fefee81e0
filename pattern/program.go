package pattern

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logfacade/core"
)

type segment struct {
	literal string
	conv    Converter
	info    FormattingInfo
}

// Program is a compiled pattern: an immutable sequence of literal text
// and bound converters.
type Program struct {
	pattern  string
	segments []segment
}

// Pattern returns the source pattern
func (p *Program) Pattern() string {
	return p.pattern
}

// Len returns the number of segments in the program
func (p *Program) Len() int {
	return len(p.segments)
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// Render formats event into a new string
func (p *Program) Render(event *core.Event) string {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	p.RenderTo(event, buf)
	s := buf.String()
	if buf.Cap() <= 64*1024 {
		bufferPool.Put(buf)
	}
	return s
}

// RenderTo appends the formatted event to buf
func (p *Program) RenderTo(event *core.Event, buf *bytes.Buffer) {
	for i := range p.segments {
		seg := &p.segments[i]
		if seg.conv == nil {
			buf.WriteString(seg.literal)
			continue
		}
		seg.info.apply(buf, seg.conv.Convert(event))
	}
}
