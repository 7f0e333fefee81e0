// Package core defines the shared types used across the framework.
//
// It provides the Level type for severity gating, the Event type that
// represents a single log call, and the Field type for structured
// key-value context.
//
// Levels are totally ordered by weight. ParseLevel is strict: an unknown
// name is a configuration error (ErrUnknownLevel) rather than a silent
// fallback, so misconfiguration surfaces before any event flows.
//
// An Event is created once with NewEvent and never mutated afterwards.
// Destinations, filters and converters only read it, which is what makes
// sharing one Event between many destinations and goroutines safe.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types.
package core
