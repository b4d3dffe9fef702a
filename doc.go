// Package xanthos provides a lock-free, fixed-capacity concurrent table
// addressed by opaque generational identifiers.
//
// # Overview
//
// Xanthos is designed for workloads that hand a value to many goroutines
// under a cheap, copyable handle and need to reclaim that value's slot
// without ever taking a lock:
//   - Concurrency: lock-free insert/remove, wait-free-bounded retries
//   - Generational identifiers: ABA-resistant, reconstructible from bits
//   - Type Safety: Generic API, Table[T any]
//   - Observability: OpenTelemetry integration (optional separate package)
//
// # Quick Start
//
//	import "github.com/agilira/xanthos"
//
//	type Session struct {
//	    UserID int
//	}
//
//	func main() {
//	    table, err := xanthos.New[Session](xanthos.DefaultConfig[Session]())
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    id, ok := table.Insert(Session{UserID: 123})
//	    if !ok {
//	        // table is at capacity
//	    }
//
//	    guard := table.Guard()
//	    defer guard.Done()
//
//	    if session, found := table.Read(id, guard); found {
//	        fmt.Printf("user: %d\n", session.UserID)
//	    }
//
//	    table.Remove(id)
//	}
//
// # Identifiers
//
// Insert and Write return a Detached: an opaque, machine-word-width
// integer that names the new entry. Detached values are freely copyable
// and comparable, and convertible to/from raw bits via Bits/
// DetachedFromBits for storage alongside other data. They carry no
// reference back to the table.
//
// Every time a physical slot is reused after a Remove, its generation
// advances, so a stale Detached from a previous occupant of the same slot
// differs from the current one in its high bits. Lookups do not check
// this themselves — Exists/With/Read answer "is this slot currently
// occupied", not "is this exactly the entry I originally inserted". A
// caller that needs the stronger guarantee stores its own Detached
// alongside the value and compares manually.
//
// # Concurrency Model
//
// All operations are lock-free:
//
//   - Insert/Write: bounded-retry CAS loop over the free list
//   - Remove: a single atomic swap plus a bounded-retry CAS loop
//   - Exists/With/Read: a single guarded atomic load
//   - WeakKeys: a single guarded atomic load per slot, weakly consistent
//
// No operation blocks, sleeps, or accepts a context.Context — none of
// them can hang. Reclamation of evicted values is deferred to whatever
// Collector the Table was configured with; see Guard and Collector.
//
// # Reclamation
//
// Every Table is parameterized on a Collector, which decides when a value
// evicted by Remove is actually freed. The default, used whenever
// Config.Collector is left nil, relies entirely on Go's garbage
// collector: a caller holding a *T obtained under a Guard keeps that
// value reachable for as long as it holds the reference, regardless of
// what the table does concurrently, so there is nothing to defer.
//
// Element types holding non-GC resources (file handles, off-heap memory)
// that need prompt, deterministic finalization should use
// github.com/agilira/xanthos/epoch instead:
//
//	cfg := xanthos.DefaultConfig[*os.File]()
//	cfg.Collector = epoch.New[*os.File]()
//	table, err := xanthos.New(cfg)
//
// # Observability
//
// Enterprise observability with OpenTelemetry (optional):
//
//	import xanthosotel "github.com/agilira/xanthos/otel"
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	metricsCollector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	cfg := xanthos.DefaultConfig[Session]()
//	cfg.MetricsCollector = metricsCollector
//	table, err := xanthos.New(cfg)
//
// Metrics exposed (via OpenTelemetry):
//   - xanthos_insert_latency_ns: Histogram of Insert/Write latencies
//   - xanthos_remove_latency_ns: Histogram of Remove latencies
//   - xanthos_read_latency_ns: Histogram of Exists/With/Read latencies
//   - xanthos_capacity_exhausted_total: Counter of failed Insert/Write calls
//
// The core xanthos package has zero OTEL dependencies. The xanthos/otel
// package is a separate module.
//
// # Configuration
//
// Complete configuration options:
//
//	config := xanthos.Config[Session]{
//	    // Number of slots, rounded up to a power of two and clamped to
//	    // [MinCapacity, MaxCapacity]. Fixed for the table's lifetime.
//	    Capacity: 10_000,
//
//	    // Optional: memory reclamation strategy (default: GC-backed)
//	    Collector: epoch.New[Session](),
//
//	    // Optional: diagnostics (default: NoOpLogger)
//	    Logger: myLogger,
//
//	    // Optional: metrics collector (default: NoOp, zero overhead)
//	    MetricsCollector: metricsCollector,
//
//	    // Optional: custom time provider for testing (default: real time)
//	    TimeProvider: myTimeProvider,
//	}
//
//	table, err := xanthos.New(config)
//
// Operational (non-capacity) settings can additionally be hot-reloaded
// from a watched file via HotConfig; see its doc comment.
//
// # Error Handling
//
// Capacity exhaustion and absent identifiers are never errors — they are
// plain bool/zero-value returns (see the package's operations). Errors,
// built with github.com/agilira/go-errors, are reserved for invalid
// construction-time configuration and internal invariant violations:
//
//	table, err := xanthos.New(config)
//	if err != nil {
//	    if xanthos.IsConfigError(err) {
//	        log.Printf("bad config: %v", err)
//	    }
//	    return
//	}
//
// # Non-goals
//
// The table does not resize, does not provide strong snapshot iteration
// or ordered traversal, has no secondary indexes, and does not support
// serialization/persistence or in-place mutation — update a value by
// removing and re-inserting it.
//
// # Examples
//
// Runnable examples are the Example functions in example_test.go
// (ExampleNew, ExampleTable_Write, ExampleTable_Remove,
// ExampleTable_WeakKeys and ExampleTable_Len). The OpenTelemetry wiring is
// shown in the otel package documentation.
//
// # Packages
//
//   - github.com/agilira/xanthos: Core table implementation
//   - github.com/agilira/xanthos/epoch: Epoch-based Collector implementation
//   - github.com/agilira/xanthos/otel: OpenTelemetry integration (separate module)
//
// # License
//
// Mozilla Public License 2.0 (see the SPDX identifier below).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package xanthos
