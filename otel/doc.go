// Package otel provides OpenTelemetry integration for xanthos table metrics.
//
// # Overview
//
// This package implements the xanthos.MetricsCollector interface using OpenTelemetry,
// enabling enterprise-grade observability with automatic percentile calculation and
// multi-backend support (Prometheus, Jaeger, DataDog, Grafana).
//
// The package is a separate module to keep the xanthos core lightweight.
// Applications that don't need metrics collection don't pay for the OTEL dependencies.
//
// # Features
//
//   - Automatic Percentiles: OTEL Histograms calculate p50, p95, p99, p99.9 latencies
//   - Multi-Backend Support: Works with Prometheus, Jaeger, DataDog, any OTEL-compatible backend
//   - Outcome Tracking: Insert/remove/read success ratios, capacity exhaustion
//   - Thread-Safe: Lock-free, safe for concurrent use
//   - Low Overhead: ~50-100ns per operation
//   - Industry Standard: Uses OpenTelemetry (CNCF standard)
//
// # Installation
//
//	go get github.com/agilira/xanthos/otel
//
// # Quick Start
//
// Basic setup with Prometheus exporter:
//
//	import (
//	    "github.com/agilira/xanthos"
//	    xanthosotel "github.com/agilira/xanthos/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	// Setup Prometheus exporter
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create OTEL MeterProvider
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	// Create metrics collector
//	metricsCollector, err := xanthosotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Configure the table with metrics
//	cfg := xanthos.DefaultConfig[User]()
//	cfg.Capacity = 10_000
//	cfg.MetricsCollector = metricsCollector
//	table, err := xanthos.New(cfg)
//
//	// Use the table normally - metrics are automatically collected
//	id, _ := table.Insert(user)
//	guard := table.Guard()
//	table.Read(id, guard)
//	guard.Done()
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":2112", nil))
//
// # Metrics Exposed
//
// Histograms (with automatic percentiles):
//   - xanthos_insert_latency_ns: Insert/Write operation latency in nanoseconds
//   - xanthos_remove_latency_ns: Remove operation latency in nanoseconds
//   - xanthos_read_latency_ns: Exists/With/Read operation latency in nanoseconds
//   - xanthos_weak_keys_scan_observed: Entries observed per WeakKeys scan
//
// Counters:
//   - xanthos_inserts_ok_total / xanthos_inserts_failed_total
//   - xanthos_removes_ok_total / xanthos_removes_missed_total
//   - xanthos_reads_hit_total / xanthos_reads_miss_total
//   - xanthos_capacity_exhausted_total
//
// All metrics are thread-safe and use lock-free OTEL instruments.
//
// # Configuration
//
// Custom meter name (useful for multiple table instances):
//
//	collector, err := xanthosotel.NewOTelMetricsCollector(
//	    provider,
//	    xanthosotel.WithMeterName("myapp_session_table"),
//	)
//
// Custom histogram buckets for better percentile accuracy:
//
//	provider := metric.NewMeterProvider(
//	    metric.WithReader(exporter),
//	    metric.WithView(metric.NewView(
//	        metric.Instrument{Name: "xanthos_insert_latency_ns"},
//	        metric.Stream{
//	            Aggregation: metric.AggregationExplicitBucketHistogram{
//	                // Buckets in nanoseconds: 100ns, 500ns, 1μs, 5μs, 10μs, 50μs, 100μs
//	                Boundaries: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
//	            },
//	        },
//	    )),
//	)
//
// # Prometheus Queries
//
// Calculate P95 insert latency (last 5 minutes):
//
//	histogram_quantile(0.95, rate(xanthos_insert_latency_ns_bucket[5m]))
//
// Calculate read hit ratio:
//
//	rate(xanthos_reads_hit_total[5m]) /
//	(rate(xanthos_reads_hit_total[5m]) + rate(xanthos_reads_miss_total[5m]))
//
// Calculate capacity-exhaustion rate:
//
//	rate(xanthos_capacity_exhausted_total[1m]) * 60
//
// # Architecture
//
// Separation of concerns:
//
//	┌─────────────────────────────────────┐
//	│     xanthos Table (Core Module)     │
//	│  • No OTEL dependencies             │
//	│  • MetricsCollector interface       │
//	│  • NoOpMetricsCollector (default)   │
//	└──────────────┬──────────────────────┘
//	               │
//	               │ implements
//	               ▼
//	┌─────────────────────────────────────┐
//	│    xanthos/otel (This Package)      │
//	│  • OTelMetricsCollector             │
//	│  • OTEL SDK dependencies            │
//	│  • Histograms + Counters            │
//	└──────────────┬──────────────────────┘
//	               │
//	               │ exports to
//	               ▼
//	┌─────────────────────────────────────┐
//	│      OTEL MeterProvider             │
//	│  • Aggregates metrics               │
//	│  • Calculates percentiles           │
//	│  • Exports to backends              │
//	└──────────────┬──────────────────────┘
//	               │
//	     ┌─────────┴──────┬────────┐
//	     ▼                ▼        ▼
//	Prometheus        Jaeger   DataDog
//
// This architecture keeps the core lightweight while enabling enterprise observability
// as an optional add-on.
//
// # Thread Safety
//
// All methods are thread-safe and use lock-free OTEL instruments:
//
//	collector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	// Safe to call from multiple goroutines
//	go func() { collector.RecordInsert(1000, true) }()
//	go func() { collector.RecordRemove(2000, true) }()
//	go func() { collector.RecordRead(500, true) }()
//	go func() { collector.RecordCapacityExhausted() }()
//
// # Best Practices
//
// 1. Reuse MeterProvider across table instances:
//
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector1, _ := xanthosotel.NewOTelMetricsCollector(provider)
//	collector2, _ := xanthosotel.NewOTelMetricsCollector(provider,
//	    xanthosotel.WithMeterName("table2"))
//
// 2. Always shutdown MeterProvider on exit:
//
//	defer func() {
//	    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	    defer cancel()
//	    if err := provider.Shutdown(ctx); err != nil {
//	        log.Printf("Failed to shutdown meter provider: %v", err)
//	    }
//	}()
//
// 3. Monitor key metrics:
//   - Read hit ratio relative to your expected absent-identifier rate
//   - P99 insert latency under contention
//   - Capacity-exhaustion rate: should be zero in steady state for a
//     correctly sized table
//
// # Examples
//
// The Quick Start above shows the Prometheus exporter wiring; this module
// ships no standalone example program.
//
// # Compatibility
//
//   - Go: 1.25+
//   - OpenTelemetry: v1.31.0+
//   - Prometheus: v2.30.0+
//
// # License
//
// Same as xanthos core: Mozilla Public License 2.0 (MPL-2.0).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package otel
