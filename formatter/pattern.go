package formatter

import (
	"bytes"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/pattern"
)

// DefaultPattern is used by the pattern layout when no pattern is given
const DefaultPattern = "%m%n"

// PatternFormatter renders events through a compiled conversion pattern
type PatternFormatter struct {
	program *pattern.Program
}

// NewPatternFormatter compiles p. Compile errors are returned here so a
// bad pattern is reported before any event is formatted.
func NewPatternFormatter(p string) (*PatternFormatter, error) {
	if p == "" {
		p = DefaultPattern
	}
	prog, err := pattern.Compile(p)
	if err != nil {
		return nil, err
	}
	return &PatternFormatter{program: prog}, nil
}

// Pattern returns the source pattern
func (f *PatternFormatter) Pattern() string {
	return f.program.Pattern()
}

// Format formats an event with the compiled pattern
func (f *PatternFormatter) Format(event *core.Event) string {
	return render(func(buf *bytes.Buffer) { f.program.RenderTo(event, buf) })
}

// FormatEvent implements BufferFormatter
func (f *PatternFormatter) FormatEvent(event *core.Event, buf *bytes.Buffer) {
	f.program.RenderTo(event, buf)
}
