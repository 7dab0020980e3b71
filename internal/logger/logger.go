// Package logger configure the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging
package logger

import (
	"fmt"
	"os"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/person-api/internal/config"
)

// New builds the application's root zerolog logger from config.
//
// The level comes from the observability block (with per-environment
// defaulting); the format is either machine-readable JSON or a
// human-friendly console writer for local development.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		// Config validation already rejected unknown levels; this only
		// guards direct construction in tests.
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Observability.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}

// Service wraps the optional New Relic application instance.
//
// When no license key is configured the wrapped application is nil and
// every consumer is expected to nil-check via GetApplication(). That keeps
// the whole tracing layer a no-op in local development without branching
// at startup.
type Service struct {
	nrApp *newrelic.Application
}

// NewService initializes the New Relic application if a license key is
// configured. With an empty key it returns a Service that carries no
// application at all.
func NewService(cfg *config.Config, logger *zerolog.Logger) (*Service, error) {
	nrCfg := cfg.Observability.NewRelic

	if nrCfg.LicenseKey == "" {
		logger.Info().Msg("New Relic license key not set, tracing disabled")
		return &Service{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nrCfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(nrCfg.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(nrCfg.AppLogForwardingEnabled),
	}
	if nrCfg.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
	}

	nrApp, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic: %w", err)
	}

	logger.Info().
		Str("app_name", cfg.Observability.ServiceName).
		Msg("New Relic application initialized")

	return &Service{nrApp: nrApp}, nil
}

// GetApplication returns the New Relic application, or nil when tracing
// is disabled.
func (s *Service) GetApplication() *newrelic.Application {
	return s.nrApp
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span IDs, so log lines can be correlated with traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	ctx := logger.With()
	if md.TraceID != "" {
		ctx = ctx.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		ctx = ctx.Str("span.id", md.SpanID)
	}
	return ctx.Logger()
}
