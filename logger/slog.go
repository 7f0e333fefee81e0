package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/philipp01105/logfacade/core"
)

// SlogHandler implements slog.Handler on top of a Logger, so code written
// against log/slog feeds the same destinations.
type SlogHandler struct {
	logger *Logger
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a slog.Handler that logs through l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle converts the record into an event and dispatches it
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, len(s.logger.fields)+len(s.attrs)+record.NumAttrs())
	fields = append(fields, s.logger.fields...)
	fields = append(fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendSlogAttr(fields, s.group, a)
		return true
	})

	var caller core.CallerInfo
	if s.logger.includeCaller && record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		caller = core.CallerInfo{
			File:      frame.File,
			ShortFile: filepath.Base(frame.File),
			Line:      frame.Line,
			Function:  frame.Function,
			Defined:   frame.File != "",
		}
	}

	t := record.Time
	if t.IsZero() {
		t = core.CoarseNow()
	}
	s.logger.dispatch(core.NewEvent(core.EventData{
		Time:       t,
		Level:      slogLevelToCore(record.Level),
		LoggerName: s.logger.name,
		Message:    record.Message,
		Caller:     caller,
		Fields:     fields,
	}))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrs: newAttrs, group: s.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs[:len(s.attrs):len(s.attrs)], group: newGroup}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels below
// DEBUG map to TRACE and levels above ERROR to FATAL.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr converts a slog.Attr to fields, prefixing the group. Group
// attributes are flattened into dotted keys.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		return append(fields, Bool(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, key, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
