package pattern

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/logfacade/core"
)

// notAvailable is rendered for location details that were not captured
const notAvailable = "NA"

// Named date layouts accepted by %d
const (
	LayoutISO8601  = "2006-01-02T15:04:05-07:00"
	LayoutAbsolute = "15:04:05.000"
	LayoutDate     = "02 Jan 2006 15:04:05.000"
)

var namedLayouts = map[string]string{
	"ISO8601":     LayoutISO8601,
	"ABSOLUTE":    LayoutAbsolute,
	"DATE":        LayoutDate,
	"RFC3339":     "2006-01-02T15:04:05Z07:00",
	"RFC3339NANO": "2006-01-02T15:04:05.999999999Z07:00",
}

func optionError(msg, option string) error {
	return fmt.Errorf("%w: %s: %q", ErrInvalidOption, msg, option)
}

// funcConverter adapts a plain function to Converter
type funcConverter func(event *core.Event) string

func (f funcConverter) Convert(event *core.Event) string {
	return f(event)
}

// literalConverter renders a value fixed at compile time
type literalConverter string

func (l literalConverter) Convert(*core.Event) string {
	return string(l)
}

// nonReferenceTime formats unlike the reference time in every element, so a
// layout that formats to itself has none
var nonReferenceTime = time.Date(2001, 2, 3, 4, 5, 6, 7, time.FixedZone("X", 3600))

func newDateConverter(option string, _ bool) (Converter, error) {
	layout := LayoutISO8601
	if option = strings.TrimSpace(option); option != "" {
		if named, ok := namedLayouts[strings.ToUpper(option)]; ok {
			layout = named
		} else if nonReferenceTime.Format(option) == option {
			return nil, fmt.Errorf("%w: date layout %q has no Go reference time elements (like 2006-01-02)", ErrInvalidOption, option)
		} else {
			layout = option
		}
	}
	return funcConverter(func(e *core.Event) string {
		return e.Time().Format(layout)
	}), nil
}

func newMessageConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string { return e.Message() }), nil
}

func newLevelConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string { return e.Level().String() }), nil
}

func newNewlineConverter(string, bool) (Converter, error) {
	return literalConverter("\n"), nil
}

func newFileConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string {
		c := e.Caller()
		if !c.Defined {
			return notAvailable
		}
		return c.File
	}), nil
}

func newLineConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string {
		c := e.Caller()
		if !c.Defined {
			return notAvailable
		}
		return strconv.Itoa(c.Line)
	}), nil
}

func newMethodConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string {
		c := e.Caller()
		if !c.Defined || c.Function == "" {
			return notAvailable
		}
		return c.Function
	}), nil
}

func newLocationConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string {
		c := e.Caller()
		if !c.Defined {
			return notAvailable
		}
		fn := c.Function
		if fn == "" {
			fn = notAvailable
		}
		return fn + "(" + c.File + ":" + strconv.Itoa(c.Line) + ")"
	}), nil
}

func newProcessConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string { return strconv.Itoa(e.Process()) }), nil
}

func newRelativeConverter(string, bool) (Converter, error) {
	start := core.StartTime()
	return funcConverter(func(e *core.Event) string {
		return strconv.FormatInt(e.Time().Sub(start).Milliseconds(), 10)
	}), nil
}

// newMDCConverter renders a single context field, or every field as
// "k=v, k=v" when no key is given
func newMDCConverter(option string, _ bool) (Converter, error) {
	key := strings.TrimSpace(option)
	if key != "" {
		return funcConverter(func(e *core.Event) string {
			if f, ok := e.Lookup(key); ok {
				return f.StringValue()
			}
			return ""
		}), nil
	}
	return funcConverter(func(e *core.Event) string {
		return joinFields(e, ", ")
	}), nil
}

func newFieldsConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string {
		return joinFields(e, " ")
	}), nil
}

func joinFields(e *core.Event, sep string) string {
	if e.NumFields() == 0 {
		return ""
	}
	var b strings.Builder
	e.RangeFields(func(f core.Field) bool {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.StringValue())
		return true
	})
	return b.String()
}

// newExceptionConverter renders the event error, falling back to an
// error field attached with the Err field helper
func newExceptionConverter(string, bool) (Converter, error) {
	return funcConverter(func(e *core.Event) string {
		if err := e.Err(); err != nil {
			return err.Error()
		}
		var msg string
		e.RangeFields(func(f core.Field) bool {
			if f.Type == core.ErrorType {
				msg = f.Str
				return false
			}
			return true
		})
		return msg
	}), nil
}

// newEnvConverter resolves the variable once, when the pattern is compiled
func newEnvConverter(option string, _ bool) (Converter, error) {
	name := strings.TrimSpace(option)
	if name == "" {
		return nil, optionError("environment variable name required", option)
	}
	return literalConverter(os.Getenv(name)), nil
}
