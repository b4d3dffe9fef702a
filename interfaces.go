// interfaces.go: ambient pluggable capabilities for xanthos.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
//
// Grounded on the teacher's own interfaces.go (Logger/NoOpLogger).
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil
// checks on the hot path.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance. This
// interface allows injecting optimized time implementations.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch. This method
	// must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector records table operation outcomes for observability.
// Implementations must be safe for concurrent use and should be as close
// to allocation-free as possible, since every method sits on a hot path.
//
// Grounded on the method shapes the teacher's otel/collector.go and
// metrics_test.go expect (RecordGet/RecordSet/RecordDelete/...), adapted to
// the operations this table actually exposes: Insert/Write, Remove,
// Read/With/Exists (a hit meaning the identifier named a live entry), and
// capacity exhaustion (there is no eviction-by-policy or expiration
// concept here — see Non-goals).
type MetricsCollector interface {
	// RecordInsert reports the latency of a successful or failed
	// Insert/Write call.
	RecordInsert(latencyNs int64, ok bool)

	// RecordRemove reports the latency of a Remove call and whether an
	// entry was actually evicted.
	RecordRemove(latencyNs int64, removed bool)

	// RecordRead reports the latency of an Exists/With/Read call and
	// whether the identifier resolved to a live entry.
	RecordRead(latencyNs int64, hit bool)

	// RecordCapacityExhausted is called every time Insert/Write observes
	// the table at full capacity.
	RecordCapacityExhausted()

	// RecordWeakKeysScan reports the number of live entries observed by a
	// single WeakKeys iteration.
	RecordWeakKeysScan(observed int)
}

// NoOpMetricsCollector is a MetricsCollector that does nothing. Used as
// default to avoid nil checks.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordInsert(latencyNs int64, ok bool)    {}
func (NoOpMetricsCollector) RecordRemove(latencyNs int64, removed bool) {}
func (NoOpMetricsCollector) RecordRead(latencyNs int64, hit bool)     {}
func (NoOpMetricsCollector) RecordCapacityExhausted()                 {}
func (NoOpMetricsCollector) RecordWeakKeysScan(observed int)           {}
