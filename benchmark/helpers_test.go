package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/destination"
	"github.com/philipp01105/logfacade/formatter"
	"github.com/philipp01105/logfacade/logger"
	"github.com/philipp01105/logfacade/sink"
	"github.com/philipp01105/logfacade/sink/bridgesink"
	"github.com/philipp01105/logfacade/sink/consolesink"
)

// noopSink discards everything and never asks for a layout
type noopSink struct{}

func (noopSink) Write(string) error { return nil }

func (noopSink) WriteEvent(e *core.Event, _ string) error {
	_ = len(e.Message())
	return nil
}

func (noopSink) RequiresFormatter() bool { return false }
func (noopSink) Close() error            { return nil }

func activate(b *testing.B, name string, s sink.Sink, opts ...destination.Option) *destination.Destination {
	b.Helper()
	d := destination.New(name, s, opts...)
	if err := d.Activate(); err != nil {
		b.Fatal(err)
	}
	return d
}

func build(dests ...*destination.Destination) *logger.Logger {
	return logger.NewBuilder().
		WithName("bench.service.Handler").
		WithDestinations(dests...).
		WithLevel(core.DebugLevel).
		Build()
}

// newFacade returns a logger writing JSON to io.Discard
func newFacade(b *testing.B) *logger.Logger {
	return build(activate(b, "json", sink.NewWriterSink(io.Discard),
		destination.WithFormatter(formatter.NewJSONFormatter(formatter.Config{}))))
}

// newFacadePattern returns a logger rendering a conversion pattern to io.Discard
func newFacadePattern(b *testing.B, pattern string) *logger.Logger {
	return build(activate(b, "pattern", sink.NewWriterSink(io.Discard), destination.WithPattern(pattern)))
}

// newFacadeAsync returns a logger behind an async console sink writing to io.Discard
func newFacadeAsync(b *testing.B, policy sink.OverflowPolicy) *logger.Logger {
	s := consolesink.New(consolesink.Config{
		Writer:     io.Discard,
		Async:      true,
		BufferSize: 8192,
		OverflowPolicy: map[core.Level]sink.OverflowPolicy{
			core.TraceLevel: policy,
			core.DebugLevel: policy,
			core.InfoLevel:  policy,
			core.WarnLevel:  policy,
			core.ErrorLevel: policy,
			core.FatalLevel: policy,
		},
	})
	return build(activate(b, "async", s, destination.WithFormatter(formatter.NewTextFormatter(formatter.Config{}))))
}

// newFacadeZapBridge returns a logger whose destination forwards to zap
func newFacadeZapBridge(b *testing.B) *logger.Logger {
	return build(activate(b, "zap", bridgesink.NewZap(newZapLogger())))
}

func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel))
}

func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
