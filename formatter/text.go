package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/logfacade/core"
)

// TextFormatter formats events as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an event as text
func (f *TextFormatter) Format(event *core.Event) string {
	return render(func(buf *bytes.Buffer) { f.FormatEvent(event, buf) })
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
	core.FatalLevel: " [FATAL] ",
}

// FormatEvent writes the formatted event into the given buffer
func (f *TextFormatter) FormatEvent(event *core.Event, buf *bytes.Buffer) {
	buf.Write(event.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if lvl := event.Level(); lvl >= 0 && int(lvl) < len(levelBrackets) {
		buf.WriteString(levelBrackets[lvl])
	} else {
		buf.WriteString(" [")
		buf.WriteString(lvl.String())
		buf.WriteString("] ")
	}

	if name := event.LoggerName(); name != "" {
		buf.WriteString(name)
		buf.WriteString(": ")
	}

	if c := event.Caller(); f.IncludeCaller && c.Defined {
		buf.WriteByte('[')
		buf.WriteString(c.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(c.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(event.Message())

	event.RangeFields(func(field core.Field) bool {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
		return true
	})
	if err := event.Err(); err != nil {
		buf.WriteString(" error=")
		buf.WriteString(err.Error())
	}

	buf.WriteByte('\n')
}
