package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values applied when the environment does not
// override them.
const (
	DefaultPort                 = 3001
	DefaultLogLevel             = "info"
	DefaultTokenLifetimeMinutes = 180
)

// Load builds the application configuration from environment variables.
// Variables use the RECIPES_ prefix with underscores separating the group
// and the field, e.g. RECIPES_SERVER_PORT or RECIPES_AUTH_JWT_SECRET.
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("auth.token_lifetime_minutes", DefaultTokenLifetimeMinutes)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("static.dir", "")

	// Environment variables take precedence over defaults.
	v.SetEnvPrefix("RECIPES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not register keys, so bind the ones we care about
	// explicitly to make them visible to Unmarshal.
	keys := []string{
		"server.port",
		"server.log_level",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"cors.allowed_origins",
		"static.dir",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against the struct validation tags.
// It is exposed separately so tests and callers constructing a Config by
// hand can run the same checks as Load.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
