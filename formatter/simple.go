package formatter

import (
	"bytes"

	"github.com/philipp01105/logfacade/core"
)

// SimpleFormatter renders "LEVEL - message" followed by a newline. It is
// the layout used when a destination has no formatter configured.
type SimpleFormatter struct{}

// Format formats an event as "LEVEL - message\n"
func (SimpleFormatter) Format(event *core.Event) string {
	return event.Level().String() + " - " + event.Message() + "\n"
}

// FormatEvent implements BufferFormatter
func (SimpleFormatter) FormatEvent(event *core.Event, buf *bytes.Buffer) {
	buf.WriteString(event.Level().String())
	buf.WriteString(" - ")
	buf.WriteString(event.Message())
	buf.WriteByte('\n')
}
