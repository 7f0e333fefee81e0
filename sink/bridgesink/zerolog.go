package bridgesink

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/logfacade/core"
)

// ZerologSink writes events to a zerolog logger
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerolog creates a sink writing to logger
func NewZerolog(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// ZerologLevel maps a level onto zerolog
func ZerologLevel(l core.Level) zerolog.Level {
	switch l {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Write logs rendered at INFO
func (s *ZerologSink) Write(rendered string) error {
	s.logger.WithLevel(zerolog.InfoLevel).Msg(message("", rendered))
	return nil
}

// WriteEvent implements sink.EventSink. WithLevel never exits, even at
// FATAL.
func (s *ZerologSink) WriteEvent(event *core.Event, rendered string) error {
	ev := s.logger.WithLevel(ZerologLevel(event.Level()))
	if ev == nil {
		return nil
	}
	if name := event.LoggerName(); name != "" {
		ev = ev.Str("logger", name)
	}
	if c := event.Caller(); c.Defined {
		ev = ev.Str(zerolog.CallerFieldName, zerolog.CallerMarshalFunc(0, c.File, c.Line))
	}
	event.RangeFields(func(f core.Field) bool {
		switch f.Type {
		case core.StringType, core.ErrorType:
			ev = ev.Str(f.Key, f.Str)
		case core.IntType, core.Int64Type:
			ev = ev.Int64(f.Key, f.Int64)
		case core.Float64Type:
			ev = ev.Float64(f.Key, f.Float64)
		case core.BoolType:
			ev = ev.Bool(f.Key, f.Int64 == 1)
		case core.TimeType:
			ev = ev.Time(f.Key, time.Unix(0, f.Int64).UTC())
		case core.DurationType:
			ev = ev.Dur(f.Key, time.Duration(f.Int64))
		default:
			ev = ev.Interface(f.Key, f.Any)
		}
		return true
	})
	if err := event.Err(); err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(message(event.Message(), rendered))
	return nil
}

// RequiresFormatter reports false; zerolog encodes events itself
func (s *ZerologSink) RequiresFormatter() bool { return false }

// Close is a no-op, zerolog writes synchronously
func (s *ZerologSink) Close() error { return nil }
