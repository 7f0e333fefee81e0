// Package benchmark compares the facade against zap, zerolog, logrus and
// log/slog writing to io.Discard, and measures the decision pipeline on its
// own (filters, thresholds, fan-out, async policies).
package benchmark
