package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Storage   StorageConfig   `mapstructure:"storage" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Content   ContentConfig   `mapstructure:"content" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port               int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel           string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend string   `mapstructure:"backend" validate:"required,oneof=memory sqlite postgres s3"`
	Path    string   `mapstructure:"path" validate:"required_if=Backend sqlite"`
	URL     string   `mapstructure:"url" validate:"required_if=Backend postgres"`
	S3      S3Config `mapstructure:"s3"`
}

// S3Config configures the object-store backend.
type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint" validate:"omitempty,url"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// AuthConfig contains authentication settings. JWTSecret is only needed by
// the HTTP server, which checks for it at startup.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=43200"`
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}

// TokenLifetime returns the access token lifetime as a duration.
func (c AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}

// ContentConfig controls how flashcards are retrieved.
type ContentConfig struct {
	Strategy       string `mapstructure:"strategy" validate:"required,oneof=remote offline"`
	Merge          string `mapstructure:"merge" validate:"required,oneof=combine replace"`
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	PacingDelayMS  int    `mapstructure:"pacing_delay_ms" validate:"gte=0"`
	MaxItems       int    `mapstructure:"max_items" validate:"required,gt=0"`
}

// Timeout returns the remote fetch timeout.
func (c ContentConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PacingDelay returns the delay applied before serving the fallback set.
func (c ContentConfig) PacingDelay() time.Duration {
	return time.Duration(c.PacingDelayMS) * time.Millisecond
}

// TelemetryConfig configures OpenTelemetry export. Tracing export is
// disabled when OTLPEndpoint is empty.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint" validate:"omitempty,url"`
	ServiceName  string `mapstructure:"service_name"`
}
