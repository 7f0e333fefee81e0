// Package pattern compiles layout patterns into converter programs.
//
// A pattern is scanned once, left to right. Text is copied verbatim; a
// '%' starts a conversion made of optional format modifiers, a converter
// name and an optional {option}:
//
//	%d{ISO8601} [%-5p] %c{20}: %m%n
//
// Modifiers follow the usual log4 conventions: a minimum width pads on
// the left (or on the right with '-'), and '.N' truncates to N runes by
// removing from the start ('.-N' removes from the end). "%%" emits a
// literal percent sign.
//
// Compile rejects unknown converter names, malformed modifiers and bad
// options, so a broken pattern fails when the destination is activated
// instead of producing corrupt output later. The resulting Program is
// immutable and is replayed once per event with no re-parsing.
//
// The logger converter memoizes shortened names. Its cache is an
// insert-if-absent map with no eviction: logger names form a small set
// that is stable for the life of the process, so the cache stays small.
package pattern
