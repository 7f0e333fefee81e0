package bridgesink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logfacade/core"
)

// LogrusSink writes events to a logrus logger
type LogrusSink struct {
	logger *logrus.Logger
}

// NewLogrus creates a sink writing to logger
func NewLogrus(logger *logrus.Logger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{logger: logger}
}

// LogrusLevel maps a level onto logrus
func LogrusLevel(l core.Level) logrus.Level {
	switch l {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	case core.FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// Write logs rendered at INFO
func (s *LogrusSink) Write(rendered string) error {
	s.logger.Log(logrus.InfoLevel, message("", rendered))
	return nil
}

// WriteEvent implements sink.EventSink. Entry.Log only panics at
// PanicLevel and never exits, so FATAL events are safe to forward.
func (s *LogrusSink) WriteEvent(event *core.Event, rendered string) error {
	fields := make(logrus.Fields, event.NumFields()+1)
	if name := event.LoggerName(); name != "" {
		fields["logger"] = name
	}
	event.RangeFields(func(f core.Field) bool {
		fields[f.Key] = f.Value()
		return true
	})
	entry := s.logger.WithFields(fields).WithTime(event.Time())
	if err := event.Err(); err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(LogrusLevel(event.Level()), message(event.Message(), rendered))
	return nil
}

// RequiresFormatter reports false; logrus formats entries itself
func (s *LogrusSink) RequiresFormatter() bool { return false }

// Close is a no-op, the logger's output is owned by the caller
func (s *LogrusSink) Close() error { return nil }
