package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups telemetry settings: structured logging, New
// Relic APM, and periodic dependency health checks. The whole block is
// optional at the root; DefaultObservabilityConfig fills the gaps.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces. Forced to
	// "lightbnb" at load time.
	ServiceName string `koanf:"service_name"`

	// Environment labels telemetry by runtime environment.
	Environment string `koanf:"environment"`

	Logging      LoggingConfig      `koanf:"logging"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// SlowQueryThreshold marks queries slower than this for logging.
	// Supplied as a duration string, e.g. "100ms".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig controls the APM agent. An empty LicenseKey disables
// New Relic entirely; everything degrades to no-ops.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls periodic dependency checks.
type HealthChecksConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
	Timeout  time.Duration `koanf:"timeout"`
	Checks   []string      `koanf:"checks"`
}

// DefaultObservabilityConfig returns defaults suitable for local
// development: info-level JSON logs, New Relic disabled, health checks on.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "lightbnb",
		Environment: "development",

		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},

		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   false,
			DistributedTracingEnabled: false,
			DebugLogging:              false,
		},

		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"database", "redis"},
		},
	}
}

// Validate enforces constraints the struct tags cannot express, e.g. value
// sets for level/format and lower bounds on durations.
func (o *ObservabilityConfig) Validate() error {
	switch o.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", o.Logging.Level)
	}

	switch o.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", o.Logging.Format)
	}

	if o.HealthChecks.Enabled {
		if o.HealthChecks.Interval < time.Second {
			return fmt.Errorf("health check interval %s below 1s", o.HealthChecks.Interval)
		}
		if o.HealthChecks.Timeout < time.Second {
			return fmt.Errorf("health check timeout %s below 1s", o.HealthChecks.Timeout)
		}
	}

	return nil
}
