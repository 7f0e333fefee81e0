// Package redissink writes rendered events to Redis, either appended to a
// list with RPUSH or broadcast on a channel with PUBLISH.
package redissink

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/philipp01105/logfacade/sink"
)

// ErrNoKey is returned when no list key or channel is configured
var ErrNoKey = errors.New("redis sink: key is required")

// Client is the subset of *redis.Client used by the sink
type Client interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// Config holds configuration for the Redis sink
type Config struct {
	// Addr is the host:port of the server (default: localhost:6379)
	Addr     string
	Password string
	DB       int
	// Key is the list key, or the channel name when Publish is set
	Key string
	// Publish sends lines with PUBLISH instead of RPUSH
	Publish bool
	// MaxLen trims the list to its newest MaxLen lines after each push (0 = unbounded)
	MaxLen int64
	// Timeout bounds each command (default: 1s)
	Timeout time.Duration
}

// Sink writes each line with one synchronous command
type Sink struct {
	mu     sync.RWMutex
	client Client
	dial   func() Client
	cfg    Config
	closed bool
	stats  *sink.Stats
}

// New connects a sink to the server described by cfg. The connection is
// established lazily by the client on the first command.
func New(cfg Config) (*Sink, error) {
	if cfg.Key == "" {
		return nil, ErrNoKey
	}
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	dial := func() Client {
		return redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}
	return newSink(dial(), dial, cfg)
}

// NewWithClient creates a sink around an existing client. Such a sink
// cannot be reopened after Close.
func NewWithClient(client Client, cfg Config) (*Sink, error) {
	return newSink(client, nil, cfg)
}

func newSink(client Client, dial func() Client, cfg Config) (*Sink, error) {
	if cfg.Key == "" {
		return nil, ErrNoKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}
	return &Sink{client: client, dial: dial, cfg: cfg, stats: sink.NewStats()}, nil
}

// Write implements sink.Sink
func (s *Sink) Write(rendered string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return sink.ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	if err := s.send(ctx, rendered); err != nil {
		s.stats.IncrementFailed()
		return fmt.Errorf("redis sink %s: %w", s.cfg.Key, err)
	}
	s.stats.IncrementProcessed()
	return nil
}

func (s *Sink) send(ctx context.Context, line string) error {
	if s.cfg.Publish {
		return s.client.Publish(ctx, s.cfg.Key, line).Err()
	}
	if err := s.client.RPush(ctx, s.cfg.Key, line).Err(); err != nil {
		return err
	}
	if s.cfg.MaxLen > 0 {
		return s.client.LTrim(ctx, s.cfg.Key, -s.cfg.MaxLen, -1).Err()
	}
	return nil
}

// Open reconnects a sink closed earlier
func (s *Sink) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		return nil
	}
	if s.dial == nil {
		return sink.ErrClosed
	}
	s.client = s.dial()
	s.closed = false
	return nil
}

// Close closes the client. It is safe to call more than once.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.client.Close()
}

// Stats returns a snapshot of the sink's counters
func (s *Sink) Stats() sink.Snapshot {
	return s.stats.GetSnapshot()
}
