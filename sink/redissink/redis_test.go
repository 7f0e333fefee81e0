package redissink

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/sink"
)

type call struct {
	cmd   string
	key   string
	value interface{}
	start int64
	stop  int64
}

type fakeClient struct {
	calls    []call
	err      error
	closed   int
	deadline bool
}

func (f *fakeClient) RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	_, f.deadline = ctx.Deadline()
	f.calls = append(f.calls, call{cmd: "RPUSH", key: key, value: values[0]})
	return redis.NewIntResult(int64(len(f.calls)), f.err)
}

func (f *fakeClient) LTrim(_ context.Context, key string, start, stop int64) *redis.StatusCmd {
	f.calls = append(f.calls, call{cmd: "LTRIM", key: key, start: start, stop: stop})
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.calls = append(f.calls, call{cmd: "PUBLISH", key: channel, value: message})
	return redis.NewIntResult(1, f.err)
}

func (f *fakeClient) Close() error {
	f.closed++
	return nil
}

func TestSink_RPush(t *testing.T) {
	c := &fakeClient{}
	s, err := NewWithClient(c, Config{Key: "logs"})
	require.NoError(t, err)

	require.NoError(t, s.Write("INFO - one\n"))
	require.Len(t, c.calls, 1)
	assert.Equal(t, call{cmd: "RPUSH", key: "logs", value: "INFO - one\n"}, c.calls[0])
	assert.True(t, c.deadline, "commands run with a timeout")
	assert.Equal(t, uint64(1), s.Stats().ProcessedTotal)
}

func TestSink_MaxLen(t *testing.T) {
	c := &fakeClient{}
	s, err := NewWithClient(c, Config{Key: "logs", MaxLen: 100})
	require.NoError(t, err)

	require.NoError(t, s.Write("x"))
	require.Len(t, c.calls, 2)
	assert.Equal(t, call{cmd: "LTRIM", key: "logs", start: -100, stop: -1}, c.calls[1])
}

func TestSink_Publish(t *testing.T) {
	c := &fakeClient{}
	s, err := NewWithClient(c, Config{Key: "events", Publish: true, Timeout: time.Second})
	require.NoError(t, err)

	require.NoError(t, s.Write("WARN - disk\n"))
	assert.Equal(t, []call{{cmd: "PUBLISH", key: "events", value: "WARN - disk\n"}}, c.calls)
}

func TestSink_Error(t *testing.T) {
	boom := errors.New("connection refused")
	c := &fakeClient{err: boom}
	s, err := NewWithClient(c, Config{Key: "logs"})
	require.NoError(t, err)

	err = s.Write("x")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "redis sink logs")
	assert.Equal(t, uint64(1), s.Stats().FailedTotal)
}

func TestSink_Close(t *testing.T) {
	c := &fakeClient{}
	s, err := NewWithClient(c, Config{Key: "logs"})
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, c.closed)
	assert.ErrorIs(t, s.Write("x"), sink.ErrClosed)
	assert.ErrorIs(t, s.Open(), sink.ErrClosed)
	assert.Empty(t, c.calls)
}

func TestSink_ReopenDials(t *testing.T) {
	first, second := &fakeClient{}, &fakeClient{}
	dials := []Client{second}
	s, err := newSink(first, func() Client {
		c := dials[0]
		dials = dials[1:]
		return c
	}, Config{Key: "logs"})
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Open())
	require.NoError(t, s.Write("x"))
	assert.Empty(t, first.calls)
	assert.Len(t, second.calls, 1)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := NewWithClient(&fakeClient{}, Config{})
	assert.ErrorIs(t, err, ErrNoKey)

	_, err = New(Config{})
	assert.ErrorIs(t, err, ErrNoKey)
}
