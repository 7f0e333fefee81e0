// Package logger is the public API of logfacade. Most users only need to
// import this package.
//
// A Logger is immutable after construction: its name, level, fields and
// destinations are set once via the Builder and never modified. This
// makes Logger safe for concurrent use without any locking on the read
// path.
//
// The package initializes a default Logger (async console destination,
// InfoLevel, text layout) in init(). The package-level functions Info,
// Error, Named, etc. delegate to this default instance, so simple
// programs can log without any setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom configuration, build destinations and hand them to the
// Builder:
//
//	dest := destination.New("stdout", consolesink.New(consolesink.Config{}),
//	    destination.WithPattern("%d{ABSOLUTE} %-5p %c{20}: %m%n"))
//	if err := dest.Activate(); err != nil { ... }
//
//	log := logger.NewBuilder().
//	    WithName("app").
//	    WithDestinations(dest).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// Named returns a child logger with a dotted name, With a child carrying
// extra fields. Children share their parent's destinations.
//
// Level checks happen before any allocation, so filtered-out messages
// cost only an integer comparison. NewSlogHandler adapts a Logger to
// log/slog.
package logger
