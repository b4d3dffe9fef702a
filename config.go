// config.go: configuration for xanthos tables.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"github.com/agilira/go-timecache"
)

// Config holds construction-time parameters for a Table[T].
//
// Capacity is the only field that shapes the table's physical layout; it
// cannot be changed after New returns (see SPEC_FULL.md Non-goals — this
// module does not resize). Every other field is an ambient, swappable
// capability fixed at construction. HotConfig does not modify a Config or
// a Table; it only reports OperationalConfig values (log level, metrics
// sample rate, collector flush interval) for the caller to apply.
type Config[T any] struct {
	// Capacity is the number of slots the table holds. It is rounded up to
	// the next power of two and clamped to [MinCapacity, MaxCapacity].
	// Default: DefaultCapacity.
	Capacity int

	// Collector provides memory reclamation for evicted entries. If nil,
	// a GC-backed collector is used: safe and zero-overhead for element
	// types that hold only garbage-collected memory. Use epoch.New for
	// element types needing prompt, deterministic finalization.
	Collector Collector[T]

	// Logger is used for diagnostics. If nil, NoOpLogger is used.
	// Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for metrics timestamps. If nil,
	// a default cached-time implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics
	// (latencies, hit/miss rates, capacity exhaustion). If nil,
	// NoOpMetricsCollector is used (zero overhead). Default:
	// NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies sensible defaults.
// Returns nil (no actual validation errors, only normalization); see
// SPEC_FULL.md §7 — capacity is normalized here rather than rejected,
// exactly as the original's Capacity::new rounds and clamps rather than
// failing.
//
// This method is automatically called by New, so callers typically don't
// need to invoke it directly. It is exported so callers can inspect the
// normalized configuration ahead of time.
//
// Default values applied:
//   - Capacity: DefaultCapacity if <= 0, rounded up to a power of two and
//     clamped to [MinCapacity, MaxCapacity] otherwise
//   - Collector: a GC-backed collector if nil
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config[T]) Validate() error {
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	c.Capacity = validateCapacity(c.Capacity)

	if c.Collector == nil {
		c.Collector = newGCCollector[T]()
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults for element
// type T.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{
		Capacity:         DefaultCapacity,
		Collector:        newGCCollector[T](),
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache. This
// provides much faster time access than time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
