// hot-reload.go: dynamic ambient configuration via Argus.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// OperationalConfig holds the subset of a deployment's settings that are
// safe to change without rebuilding a Table: logging verbosity, a metrics
// sampling hint, and the flush cadence an external Collector (such as
// epoch.Collector) should use. Capacity is never part of this type —
// changing it always requires constructing a new Table (see
// SPEC_FULL.md Non-goals).
type OperationalConfig struct {
	// LogLevel is an advisory verbosity hint ("debug", "info", "warn",
	// "error") for whatever Logger a deployment has wired in. The Logger
	// interface itself has no notion of levels; callers that want actual
	// filtering inspect this field themselves.
	LogLevel string

	// MetricsSampleRate is the fraction, in (0, 1], of operations a
	// MetricsCollector implementation is advised to actually record, for
	// deployments where full-fidelity metrics are too expensive.
	MetricsSampleRate float64

	// CollectorFlushInterval is how often an external Collector (such as
	// epoch.Collector) should be asked to Flush. Zero means no scheduled
	// flush; epoch.Collector then reclaims retired values only when Flush
	// is called some other way (for example by Table.Close).
	CollectorFlushInterval time.Duration
}

// HotConfig watches a configuration file with Argus and reports changes to
// the operational (non-capacity) settings of a deployment.
//
// Grounded on the teacher's hot-reload.go (HotConfig/HotConfigOptions/
// NewHotConfig/parseConfig/applyChanges), adapted so the watched settings
// are exactly OperationalConfig's fields instead of cache-eviction knobs
// (MaxSize/TTL/WindowRatio/CounterBits).
type HotConfig struct {
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  OperationalConfig

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(old, new OperationalConfig)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch. Supports
	// JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(old, new OperationalConfig)
}

// NewHotConfig creates a new hot-reloadable operational configuration. It
// starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	xanthos:
//	  log_level: "warn"
//	  metrics_sample_rate: 0.1
//	  collector_flush_interval: "5s"
//
// Supported configuration keys:
//   - xanthos.log_level (string): advisory log verbosity
//   - xanthos.metrics_sample_rate (float): (0, 1]
//   - xanthos.collector_flush_interval (duration string): e.g. "5s"
//
// Capacity is never part of this configuration: it is fixed at Table
// construction and is not, and cannot be, hot-reloaded.
func NewHotConfig(opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	hc := &HotConfig{
		OnReload: opts.OnReload,
		config:   OperationalConfig{LogLevel: "info", MetricsSampleRate: 1.0},
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// Get returns the current operational configuration (thread-safe).
func (hc *HotConfig) Get() OperationalConfig {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus when the configuration file
// changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	old := hc.config
	next := hc.parseConfig(configData)
	hc.config = next
	hc.mu.Unlock()

	if hc.OnReload != nil {
		hc.OnReload(old, next)
	}
}

// parseConfig extracts OperationalConfig from Argus config data, keeping
// any previously applied value for a key that is absent or malformed in
// this reload.
func (hc *HotConfig) parseConfig(data map[string]interface{}) OperationalConfig {
	cfg := hc.config

	section, ok := data["xanthos"].(map[string]interface{})
	if !ok {
		if _, hasLevel := data["log_level"]; hasLevel {
			section = data
		} else {
			return cfg
		}
	}

	if level, ok := section["log_level"].(string); ok && level != "" {
		cfg.LogLevel = level
	}

	if rate, ok := parseFloatInRange(section["metrics_sample_rate"], 0, 1); ok {
		cfg.MetricsSampleRate = rate
	}

	if d, ok := parseDuration(section["collector_flush_interval"]); ok {
		cfg.CollectorFlushInterval = d
	}

	return cfg
}

// parseDuration extracts a time.Duration from a string value.
func parseDuration(value interface{}) (time.Duration, bool) {
	if str, ok := value.(string); ok {
		if d, err := time.ParseDuration(str); err == nil {
			return d, true
		}
	}
	return 0, false
}

// parseFloatInRange extracts a float64 within the specified range
// (min, max].
func parseFloatInRange(value interface{}, min, max float64) (float64, bool) {
	if v, ok := value.(float64); ok {
		if v > min && v <= max {
			return v, true
		}
	}
	return 0, false
}
