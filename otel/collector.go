// Package otel provides OpenTelemetry integration for xanthos table metrics.
//
// This package implements the xanthos.MetricsCollector interface using OpenTelemetry,
// enabling enterprise-grade observability with automatic percentile calculation (p50, p95, p99)
// and multi-backend support (Prometheus, Jaeger, DataDog, Grafana).
//
// # Features
//
//   - Automatic percentile calculation via OTEL Histograms (p50, p95, p99, p99.9)
//   - Insert/read outcome ratio tracking with counters
//   - Capacity-exhaustion and weak-scan monitoring
//   - Thread-safe, lock-free implementation
//   - Compatible with any OTEL backend (Prometheus, Jaeger, DataDog, etc.)
//   - Optional: separate module, no impact on core xanthos performance
//
// # Usage
//
//	import (
//	    "github.com/agilira/xanthos"
//	    xanthosotel "github.com/agilira/xanthos/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	// Setup OTEL with Prometheus exporter
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//
//	// Create collector
//	metricsCollector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	// Configure the table
//	cfg := xanthos.DefaultConfig[string]()
//	cfg.MetricsCollector = metricsCollector
//	table, _ := xanthos.New(cfg)
//
// # Metrics Exposed
//
//   - xanthos_insert_latency_ns: Histogram of Insert/Write operation latencies in nanoseconds
//   - xanthos_remove_latency_ns: Histogram of Remove operation latencies in nanoseconds
//   - xanthos_read_latency_ns: Histogram of Exists/With/Read operation latencies in nanoseconds
//   - xanthos_inserts_ok_total / xanthos_inserts_failed_total: Counters of insert outcomes
//   - xanthos_removes_ok_total / xanthos_removes_missed_total: Counters of remove outcomes
//   - xanthos_reads_hit_total / xanthos_reads_miss_total: Counters of read outcomes
//   - xanthos_capacity_exhausted_total: Counter of capacity-exhaustion events
//   - xanthos_weak_keys_scan_observed: Histogram of entries observed per WeakKeys scan
//
// All metrics are automatically aggregated by the OTEL SDK and can be exported to
// any OTEL-compatible backend. Histograms automatically calculate percentiles (p50, p95, p99).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/xanthos"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements xanthos.MetricsCollector using OpenTelemetry.
//
// Thread-safety: safe for concurrent use by multiple goroutines. The
// underlying OTEL instruments are thread-safe and lock-free.
type OTelMetricsCollector struct {
	insertLatency metric.Int64Histogram
	removeLatency metric.Int64Histogram
	readLatency   metric.Int64Histogram

	insertsOK         metric.Int64Counter
	insertsFailed     metric.Int64Counter
	removesOK         metric.Int64Counter
	removesMissed     metric.Int64Counter
	readHits          metric.Int64Counter
	readMisses        metric.Int64Counter
	capacityExhausted metric.Int64Counter
	weakKeysObserved  metric.Int64Histogram
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/xanthos"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name. Useful for distinguishing metrics
// from multiple table instances or integrating with existing OTEL
// instrumentation.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// provider must not be nil. The collector creates an Int64Histogram per
// latency-bearing operation and an Int64Counter per discrete outcome; all
// instruments are thread-safe and lock-free.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{
		MeterName: "github.com/agilira/xanthos",
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.insertLatency, err = meter.Int64Histogram(
		"xanthos_insert_latency_ns",
		metric.WithDescription("Latency of Insert/Write operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.removeLatency, err = meter.Int64Histogram(
		"xanthos_remove_latency_ns",
		metric.WithDescription("Latency of Remove operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.readLatency, err = meter.Int64Histogram(
		"xanthos_read_latency_ns",
		metric.WithDescription("Latency of Exists/With/Read operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.insertsOK, err = meter.Int64Counter(
		"xanthos_inserts_ok_total",
		metric.WithDescription("Total number of successful inserts"),
	)
	if err != nil {
		return nil, err
	}

	collector.insertsFailed, err = meter.Int64Counter(
		"xanthos_inserts_failed_total",
		metric.WithDescription("Total number of inserts rejected for lack of capacity"),
	)
	if err != nil {
		return nil, err
	}

	collector.removesOK, err = meter.Int64Counter(
		"xanthos_removes_ok_total",
		metric.WithDescription("Total number of successful removes"),
	)
	if err != nil {
		return nil, err
	}

	collector.removesMissed, err = meter.Int64Counter(
		"xanthos_removes_missed_total",
		metric.WithDescription("Total number of Remove calls naming an already-absent identifier"),
	)
	if err != nil {
		return nil, err
	}

	collector.readHits, err = meter.Int64Counter(
		"xanthos_reads_hit_total",
		metric.WithDescription("Total number of reads that found a live entry"),
	)
	if err != nil {
		return nil, err
	}

	collector.readMisses, err = meter.Int64Counter(
		"xanthos_reads_miss_total",
		metric.WithDescription("Total number of reads that found no entry"),
	)
	if err != nil {
		return nil, err
	}

	collector.capacityExhausted, err = meter.Int64Counter(
		"xanthos_capacity_exhausted_total",
		metric.WithDescription("Total number of inserts rejected because the table was full"),
	)
	if err != nil {
		return nil, err
	}

	collector.weakKeysObserved, err = meter.Int64Histogram(
		"xanthos_weak_keys_scan_observed",
		metric.WithDescription("Number of live entries observed per WeakKeys scan"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordInsert records an Insert/Write operation.
func (c *OTelMetricsCollector) RecordInsert(latencyNs int64, ok bool) {
	ctx := context.Background()
	c.insertLatency.Record(ctx, latencyNs)
	if ok {
		c.insertsOK.Add(ctx, 1)
	} else {
		c.insertsFailed.Add(ctx, 1)
	}
}

// RecordRemove records a Remove operation.
func (c *OTelMetricsCollector) RecordRemove(latencyNs int64, removed bool) {
	ctx := context.Background()
	c.removeLatency.Record(ctx, latencyNs)
	if removed {
		c.removesOK.Add(ctx, 1)
	} else {
		c.removesMissed.Add(ctx, 1)
	}
}

// RecordRead records an Exists, With, or Read operation.
func (c *OTelMetricsCollector) RecordRead(latencyNs int64, hit bool) {
	ctx := context.Background()
	c.readLatency.Record(ctx, latencyNs)
	if hit {
		c.readHits.Add(ctx, 1)
	} else {
		c.readMisses.Add(ctx, 1)
	}
}

// RecordCapacityExhausted records an Insert/Write call rejected because the
// table was at capacity.
func (c *OTelMetricsCollector) RecordCapacityExhausted() {
	c.capacityExhausted.Add(context.Background(), 1)
}

// RecordWeakKeysScan records the number of live entries a single WeakKeys
// iteration observed.
func (c *OTelMetricsCollector) RecordWeakKeysScan(observed int) {
	c.weakKeysObserved.Record(context.Background(), int64(observed))
}

// Compile-time interface check
var _ xanthos.MetricsCollector = (*OTelMetricsCollector)(nil)
