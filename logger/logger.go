package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/destination"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is a named source of events (immutable). Every event that passes
// the logger level is handed to each destination, which applies its own
// threshold, filters and layout.
type Logger struct {
	name          string
	destinations  []*destination.Destination
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseClock   bool
	diag          *zap.Logger
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	l Logger
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{l: Logger{
		level:      core.InfoLevel, // Default level
		callerSkip: 2,              // log -> Info -> caller
		diag:       zap.NewNop(),
	}}
}

// WithName sets the dot separated logger name
func (b *Builder) WithName(name string) *Builder {
	b.l.name = name
	return b
}

// WithDestinations adds destinations. They must be activated by the caller.
func (b *Builder) WithDestinations(dests ...*destination.Destination) *Builder {
	for _, d := range dests {
		if d != nil {
			b.l.destinations = append(b.l.destinations, d)
		}
	}
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.l.level = level
	return b
}

// WithFields adds default fields to all events
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.l.fields = append(b.l.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.l.includeCaller = enabled
	return b
}

// WithCallerSkip adds frames to skip when resolving the caller, for
// wrappers around Logger
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.l.callerSkip += skip
	return b
}

// WithCoarseClock timestamps events with the cached clock of
// core.StartCoarseClock instead of time.Now
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.l.coarseClock = enabled
	if enabled {
		core.StartCoarseClock()
	}
	return b
}

// WithDiagnostics sets the logger that receives destination failures.
// The default discards them.
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	if l != nil {
		b.l.diag = l
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := b.l
	l.destinations = append([]*destination.Destination(nil), b.l.destinations...)
	l.fields = append([]core.Field(nil), b.l.fields...)
	return &l
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger level
func (l *Logger) Level() core.Level {
	return l.level
}

// Named creates a child logger whose name is this logger's name joined to
// child with a dot
func (l *Logger) Named(child string) *Logger {
	c := *l
	switch {
	case child == "":
	case l.name == "":
		c.name = child
	default:
		c.name = l.name + "." + child
	}
	return &c
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := *l
	c.fields = newFields
	return &c
}

// Enabled reports whether events at level would reach any destination
func (l *Logger) Enabled(level core.Level) bool {
	return len(l.destinations) > 0 && level.IsAtLeastAsSevereAs(l.level)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields, 0)
}

// log builds the event and hands it to every destination. skip counts
// frames between the public entry point and log beyond the default.
func (l *Logger) log(level core.Level, msg string, fields []core.Field, skip int) {
	if len(l.destinations) == 0 {
		return
	}

	var t time.Time
	if l.coarseClock {
		t = core.CoarseNow()
	} else {
		t = time.Now()
	}

	var caller core.CallerInfo
	if l.includeCaller {
		caller = core.GetCaller(l.callerSkip + skip)
	}

	all := l.fields
	if len(fields) > 0 {
		all = make([]core.Field, 0, len(l.fields)+len(fields))
		all = append(all, l.fields...)
		all = append(all, fields...)
	}

	l.dispatch(core.NewEvent(core.EventData{
		Time:       t,
		Level:      level,
		LoggerName: l.name,
		Message:    msg,
		Caller:     caller,
		Fields:     all,
	}))
}

// dispatch hands e to every destination. Sink failures do not stop the
// remaining destinations.
func (l *Logger) dispatch(e *core.Event) {
	for _, d := range l.destinations {
		if err := d.Handle(e); err != nil {
			l.diag.Warn("dispatch failed",
				zap.String("logger", l.name),
				zap.String("destination", d.Name()),
				zap.Error(err),
			)
		}
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, fields, 0)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields, 0)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields, 0)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields, 0)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields, 0)
}

// Fatal logs a fatal message, closes the destinations so queued events
// are flushed and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	if l.Enabled(core.FatalLevel) {
		l.log(core.FatalLevel, msg, fields, 0)
	}
	_ = l.Close()
	osExit(1)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil, 0)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil, 0)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil, 0)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil, 0)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil, 0)
}

// Fatalf logs a fatal message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	if l.Enabled(core.FatalLevel) {
		l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil, 0)
	}
	_ = l.Close()
	osExit(1)
}

// Close closes every destination. Loggers derived with Named or With
// share destinations, so closing one closes them for all.
func (l *Logger) Close() error {
	var err error
	for _, d := range l.destinations {
		err = multierr.Append(err, d.Close())
	}
	return err
}
