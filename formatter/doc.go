// Package formatter turns events into the text handed to sinks.
//
// A Formatter returns the rendered string. Formatters may also implement
// BufferFormatter to append into a caller supplied buffer, which callers
// prefer when they already hold a pooled buffer.
//
// The built-in layouts are PatternFormatter (a compiled conversion
// pattern), SimpleFormatter ("LEVEL - message"), TextFormatter and
// JSONFormatter. They use a pooled bytes.Buffer internally and rely on
// Append-style functions (time.AppendFormat, strconv.AppendInt) to avoid
// per-call allocations. New builds one by name from an option map.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter
