// Package bridgesink forwards events to other structured logging
// libraries: zap, zerolog and logrus.
//
// Bridge sinks implement sink.EventSink and report that they do not need
// a formatter, so a destination hands them the event with its level,
// logger name, caller and fields intact. When a formatter is configured
// the rendered line (without its trailing newline) replaces the message.
//
// FATAL events are written at the target library's fatal level but never
// terminate the process; exiting is the decision of the code that logged
// the event, not of an output.
package bridgesink

import "strings"

// message picks the text a bridge forwards for an event
func message(msg, rendered string) string {
	if rendered != "" {
		return strings.TrimRight(rendered, "\r\n")
	}
	return msg
}
