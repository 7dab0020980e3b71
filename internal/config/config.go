// Package config manages environment variables.
//
// It reads variable from the `.env` file,
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused accross the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Provide sane defaults so the API runs with an empty environment.
//   - Validate required values so the app fails fast on bad config.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into process env
	// *before* your code reads env vars. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

/*
	`koanf` reads config sources (env vars here) and unmarshals them into
	structs. Env vars are read using a prefix: PERSONAPI_. Keys are
	normalized (lowercased, prefix removed) and nested struct fields are
	mapped via "dot notation" using the "." delimiter, e.g.
	PERSONAPI_SERVER.PORT -> server.port -> Config.Server.Port
*/

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are enforced by go-playground/validator
// after loading.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as whole seconds and converted to time.Duration
// where the http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// Default returns the configuration used when no environment overrides
// are present. The API has no external dependencies, so it is fully
// runnable on defaults alone.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}

// Load reads configuration from environment variables on top of the
// defaults, validates the result, and returns it.
//
// Behavior summary:
//   - Starts from Default()
//   - Loads env vars with prefix PERSONAPI_ (keys lowercased, nested via ".")
//   - Unmarshals them over the defaults
//   - Validates required fields, then the observability block
//
// NOTE: this function logs fatally on bad config. The process exits
// immediately rather than serving with a half-loaded configuration.
func Load() (*Config, error) {
	// A console logger for the load phase only; the real application
	// logger is not configured yet.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	// Only env vars with the PERSONAPI_ prefix are read. The mapping
	// function strips the prefix and lowercases the rest, so
	// PERSONAPI_SERVER.PORT becomes "server.port".
	err := k.Load(env.Provider("PERSONAPI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PERSONAPI_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	// Unmarshal over the defaults: anything present in the environment
	// wins, anything absent keeps its default.
	mainConfig := Default()
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	// Enforce validate:"required" tags across the whole tree.
	validate := validator.New()
	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	// Observability is a pointer field, so nil means "missing".
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment values regardless of what the
	// environment set, so tracing/logging sees consistent naming.
	mainConfig.Observability.ServiceName = "person-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
