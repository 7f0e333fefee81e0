// Package sink defines where rendered events end up.
//
// A Sink receives the rendered string of an accepted event. Sinks may opt
// into richer contracts:
//
//   - EventSink also receives the event itself, for sinks that forward
//     structured data (level, logger name, fields) to another system.
//   - FormatterRequirer lets a sink declare that it does not need a
//     rendered string at all. Destinations skip rendering for such sinks
//     when no formatter is configured.
//   - Opener is called when a destination is (re)activated, so a sink
//     closed earlier can acquire its resources again.
//
// Built-in sinks:
//
//   - WriterSink writes to any io.Writer under a mutex.
//   - MultiSink fans out a single event to several child sinks.
//   - consolesink writes to stdout either synchronously or through a
//     bounded queue with a per-level OverflowPolicy.
//   - redissink pushes lines to a Redis list or channel.
//   - bridgesink forwards events to zap, zerolog or logrus loggers.
package sink
