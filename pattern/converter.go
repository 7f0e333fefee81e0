package pattern

import (
	"bytes"
	"unicode/utf8"

	"github.com/philipp01105/logfacade/core"
)

// Converter renders one pattern token for an event. Converters are
// stateless apart from private memoization and are safe for concurrent
// use.
type Converter interface {
	Convert(event *core.Event) string
}

// FormattingInfo holds the width modifiers of a conversion
type FormattingInfo struct {
	// Min is the minimum width, shorter output is padded with spaces
	Min int
	// Max is the maximum width, 0 means unlimited
	Max int
	// PadRight pads on the right (left aligned output), set by '-'
	PadRight bool
	// TrimRight removes excess runes from the end instead of the start
	TrimRight bool
}

func (fi FormattingInfo) isZero() bool {
	return fi == FormattingInfo{}
}

// apply writes s to buf honouring the width modifiers
func (fi FormattingInfo) apply(buf *bytes.Buffer, s string) {
	if fi.isZero() {
		buf.WriteString(s)
		return
	}
	n := utf8.RuneCountInString(s)
	if fi.Max > 0 && n > fi.Max {
		runes := []rune(s)
		if fi.TrimRight {
			s = string(runes[:fi.Max])
		} else {
			s = string(runes[n-fi.Max:])
		}
		n = fi.Max
	}
	pad := fi.Min - n
	if pad > 0 && !fi.PadRight {
		writeSpaces(buf, pad)
	}
	buf.WriteString(s)
	if pad > 0 && fi.PadRight {
		writeSpaces(buf, pad)
	}
}

const spaces = "                                "

func writeSpaces(buf *bytes.Buffer, n int) {
	for n > len(spaces) {
		buf.WriteString(spaces)
		n -= len(spaces)
	}
	buf.WriteString(spaces[:n])
}
