package core

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_Defaults(t *testing.T) {
	before := time.Now()
	e := NewEvent(EventData{Level: InfoLevel, LoggerName: "app.db", Message: "connected"})

	assert.Equal(t, InfoLevel, e.Level())
	assert.Equal(t, "app.db", e.LoggerName())
	assert.Equal(t, "connected", e.Message())
	assert.False(t, e.Time().Before(before))
	assert.Equal(t, os.Getpid(), e.Process())
	assert.False(t, e.Caller().Defined)
	assert.Nil(t, e.Err())
	assert.Zero(t, e.NumFields())
}

func TestNewEvent_CopiesFields(t *testing.T) {
	fields := []Field{{Key: "user", Type: StringType, Str: "alice"}}
	e := NewEvent(EventData{Level: InfoLevel, Fields: fields})

	fields[0].Str = "mallory"

	require.Equal(t, 1, e.NumFields())
	assert.Equal(t, "alice", e.Field(0).Str)
}

func TestEvent_Lookup(t *testing.T) {
	e := NewEvent(EventData{Fields: []Field{
		{Key: "k", Type: StringType, Str: "first"},
		{Key: "other", Type: IntType, Int64: 1},
		{Key: "k", Type: StringType, Str: "second"},
	}})

	f, ok := e.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, "second", f.Str)

	_, ok = e.Lookup("missing")
	assert.False(t, ok)
}

func TestEvent_RangeFields(t *testing.T) {
	e := NewEvent(EventData{Fields: []Field{
		{Key: "a", Type: StringType, Str: "1"},
		{Key: "b", Type: StringType, Str: "2"},
		{Key: "c", Type: StringType, Str: "3"},
	}})

	var keys []string
	e.RangeFields(func(f Field) bool {
		keys = append(keys, f.Key)
		return f.Key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestNewEvent_KeepsExplicitValues(t *testing.T) {
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	err := errors.New("boom")
	e := NewEvent(EventData{Time: ts, Process: 7, Err: err})

	assert.Equal(t, ts, e.Time())
	assert.Equal(t, 7, e.Process())
	assert.Same(t, err, e.Err())
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	require.True(t, caller.Defined)

	assert.Equal(t, "event_test.go", caller.ShortFile)
	assert.NotZero(t, caller.Line)
	assert.Contains(t, caller.Function, "TestGetCaller")
}

func BenchmarkNewEvent(b *testing.B) {
	fields := []Field{
		{Key: "key1", Type: StringType, Str: "value1"},
		{Key: "key2", Type: IntType, Int64: 42},
	}
	for i := 0; i < b.N; i++ {
		_ = NewEvent(EventData{Level: InfoLevel, LoggerName: "bench", Message: "test message", Fields: fields})
	}
}
