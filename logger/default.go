package logger

import (
	"sync"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/destination"
	"github.com/philipp01105/logfacade/formatter"
	"github.com/philipp01105/logfacade/sink/consolesink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with an async console destination
	d := destination.New("console",
		consolesink.New(consolesink.Config{Async: true, BufferSize: 1000}),
		destination.WithFormatter(formatter.NewTextFormatter(formatter.Config{})),
	)
	_ = d.Activate()

	defaultLogger = NewBuilder().
		WithDestinations(d).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They skip
// one extra frame so callers see their own file and line.

// Trace logs a trace message using the default logger
func Trace(msg string, fields ...core.Field) {
	logDefault(core.TraceLevel, msg, fields)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	logDefault(core.DebugLevel, msg, fields)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	logDefault(core.InfoLevel, msg, fields)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	logDefault(core.WarnLevel, msg, fields)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	logDefault(core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message using the default logger and exits the program
func Fatal(msg string, fields ...core.Field) {
	Default().Fatal(msg, fields...)
}

func logDefault(level core.Level, msg string, fields []core.Field) {
	l := Default()
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields, 1)
}

// Named returns a child of the default logger
func Named(name string) *Logger {
	return Default().Named(name)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
