// Package logger configures application logging and observability.
//
// It builds the zerolog root logger from config (level, json/console
// format) and owns the optional New Relic integration: the LoggerService
// wraps the agent application, and when log forwarding is enabled the
// logger writes through zerologWriter so log lines carry trace linking
// metadata.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the New Relic application instance.
//
// It exists so the rest of the codebase can ask "is APM enabled?" without
// importing agent setup details. GetApplication returns nil when New Relic
// is not configured, and every caller treats nil as "telemetry off".
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic agent if a license key is
// configured. With no key it returns a service whose application is nil.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	if cfg.Observability.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
	}
	if cfg.Observability.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic application: %w", err)
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the agent application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.app
}

// Shutdown flushes agent data. Safe to call when New Relic is disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.app != nil {
		ls.app.Shutdown(timeout)
	}
}

// New builds the root application logger from observability config.
//
// Format "console" writes human-readable output for local development;
// "json" writes machine-parseable lines. When New Relic log forwarding is
// on, the JSON writer is wrapped with zerologWriter so entries are decorated
// with trace metadata and shipped by the agent.
func New(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else if loggerService != nil && loggerService.GetApplication() != nil &&
		cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(os.Stdout, loggerService.GetApplication())
		out = &w
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying trace.id and span.id
// from the given transaction, for log/trace correlation.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}

// NewPgxLogger builds the logger used for SQL query tracing. Console output
// on purpose: query tracing is only enabled in the local environment.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto pgx tracelog's level scale
// (none=0 .. trace=6). Returned as int; the caller casts to
// tracelog.LogLevel.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 0 // tracelog.LogLevelNone
	}
}
