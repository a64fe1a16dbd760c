package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Static StaticConfig `mapstructure:"static"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs every issued token. It is fixed for the process
	// lifetime and must be long enough to resist brute force.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the validity window of issued tokens.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// CORSConfig controls cross-origin request handling.
type CORSConfig struct {
	// AllowedOrigins lists origins permitted to call the API.
	// A single "*" allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StaticConfig controls static file serving.
type StaticConfig struct {
	// Dir is an optional directory served at the site root.
	// Empty disables static file serving.
	Dir string `mapstructure:"dir"`
}
