package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/destination"
)

func newSlog(t *testing.T, level Level, pattern string) (*slog.Logger, *lockedBuffer) {
	t.Helper()
	buf := &lockedBuffer{}
	l := NewBuilder().
		WithName("slog").
		WithDestinations(newDest(t, buf, destination.WithPattern(pattern))).
		WithLevel(level).
		Build()
	return slog.New(NewSlogHandler(l)), buf
}

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(NewBuilder().
		WithDestinations(newDest(t, &lockedBuffer{})).
		WithLevel(InfoLevel).
		Build())

	ctx := context.Background()
	assert.False(t, sh.Enabled(ctx, slog.LevelDebug))
	assert.True(t, sh.Enabled(ctx, slog.LevelInfo))
	assert.True(t, sh.Enabled(ctx, slog.LevelWarn))
	assert.True(t, sh.Enabled(ctx, slog.LevelError))
}

func TestSlogHandler_Handle(t *testing.T) {
	log, buf := newSlog(t, DebugLevel, "%c %p %m %f%n")

	log.Info("test message", "key", "value", "count", 42)
	assert.Equal(t, "slog INFO test message key=value count=42\n", buf.String())
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	log, buf := newSlog(t, DebugLevel, "%m %X{request_id}%n")

	log.With("request_id", "req-123").Info("test message")
	assert.Equal(t, "test message req-123\n", buf.String())
}

func TestSlogHandler_WithGroup(t *testing.T) {
	log, buf := newSlog(t, DebugLevel, "%f%n")

	log.WithGroup("http").WithGroup("req").Info("x", "method", "GET")
	log.Info("y", slog.Group("db", slog.String("table", "users")))
	assert.Equal(t, "http.req.method=GET\ndb.table=users\n", buf.String())
}

func TestSlogHandler_SkipsEmptyAttrs(t *testing.T) {
	log, buf := newSlog(t, DebugLevel, "%m|%f%n")

	log.Info("x", slog.Attr{}, "k", "v")
	assert.Equal(t, "x|k=v\n", buf.String())
}

func TestSlogHandler_Error(t *testing.T) {
	log, buf := newSlog(t, DebugLevel, "%m: %ex%n")

	log.Error("request failed", "err", errors.New("timeout"))
	assert.Equal(t, "request failed: timeout\n", buf.String())
}

func TestSlogHandler_Caller(t *testing.T) {
	buf := &lockedBuffer{}
	l := NewBuilder().
		WithDestinations(newDest(t, buf, destination.WithPattern("%F%n"))).
		WithCaller(true).
		Build()

	slog.New(NewSlogHandler(l)).Info("here")
	assert.Contains(t, buf.String(), "slog_test.go")
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug - 4, TraceLevel},
		{slog.LevelDebug, DebugLevel},
		{slog.LevelInfo, InfoLevel},
		{slog.LevelInfo + 2, InfoLevel},
		{slog.LevelWarn, WarnLevel},
		{slog.LevelError, ErrorLevel},
		{slog.LevelError + 4, FatalLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			require.Equal(t, tt.want, slogLevelToCore(tt.in))
		})
	}
}
