package bridgesink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logfacade/core"
)

// ZapSink writes events to a zap logger
type ZapSink struct {
	logger *zap.Logger
}

// NewZap creates a sink writing to logger
func NewZap(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

// ZapLevel maps a level onto zap. TRACE has no zap equivalent and maps to
// DEBUG.
func ZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Write logs rendered at INFO
func (s *ZapSink) Write(rendered string) error {
	s.write(zapcore.Entry{Level: zapcore.InfoLevel, Message: message("", rendered)}, nil)
	return nil
}

// WriteEvent implements sink.EventSink
func (s *ZapSink) WriteEvent(event *core.Event, rendered string) error {
	c := event.Caller()
	ent := zapcore.Entry{
		Level:      ZapLevel(event.Level()),
		Time:       event.Time(),
		LoggerName: event.LoggerName(),
		Message:    message(event.Message(), rendered),
		Caller: zapcore.EntryCaller{
			Defined:  c.Defined,
			File:     c.File,
			Line:     c.Line,
			Function: c.Function,
		},
	}

	fields := make([]zap.Field, 0, event.NumFields()+1)
	event.RangeFields(func(f core.Field) bool {
		fields = append(fields, zapField(f))
		return true
	})
	if err := event.Err(); err != nil {
		fields = append(fields, zap.Error(err))
	}
	s.write(ent, fields)
	return nil
}

// write goes through the core directly. Logger.Fatal would attach the
// exit hook to the checked entry.
func (s *ZapSink) write(ent zapcore.Entry, fields []zap.Field) {
	if ent.Time.IsZero() {
		ent.Time = core.CoarseNow()
	}
	if ce := s.logger.Core().Check(ent, nil); ce != nil {
		ce.Write(fields...)
	}
}

func zapField(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	default:
		return zap.Any(f.Key, f.Value())
	}
}

// RequiresFormatter reports false; zap encodes events itself
func (s *ZapSink) RequiresFormatter() bool { return false }

// Close flushes the logger. Sync errors on terminals are ignored.
func (s *ZapSink) Close() error {
	_ = s.logger.Sync()
	return nil
}
