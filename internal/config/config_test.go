package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/person-api/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PERSONAPI_SERVER.PORT", "9090")
	t.Setenv("PERSONAPI_PRIMARY.ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Primary.Env)
	// Defaults survive for everything not overridden.
	assert.Equal(t, 60, cfg.Server.IdleTimeout)

	// The observability block is always populated and pinned to the
	// service name and runtime environment.
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "person-api", cfg.Observability.ServiceName)
	assert.Equal(t, "production", cfg.Observability.Environment)
}

func TestLoadWithoutEnv(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
}

func TestObservabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.ObservabilityConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.ObservabilityConfig) {},
		},
		{
			name:    "missing service name",
			mutate:  func(c *config.ObservabilityConfig) { c.ServiceName = "" },
			wantErr: "service_name is required",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *config.ObservabilityConfig) { c.Logging.Level = "inf" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *config.ObservabilityConfig) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultObservabilityConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = ""
	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
}

func TestIsProduction(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	assert.False(t, cfg.IsProduction())

	cfg.Environment = "production"
	assert.True(t, cfg.IsProduction())
}
