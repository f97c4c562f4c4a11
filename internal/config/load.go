package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FLASHDECK_SERVER_PORT.
const EnvPrefix = "FLASHDECK"

// defaults lists every configuration key. Viper only binds environment
// variables for keys it knows about, so each key needs an entry here.
var defaults = map[string]any{
	"server.port":                 8080,
	"server.log_level":            "info",
	"server.cors_allowed_origins": []string{"*"},

	"storage.backend":              "sqlite",
	"storage.path":                 "flashcards.db",
	"storage.url":                  "",
	"storage.s3.bucket":            "",
	"storage.s3.region":            "us-east-1",
	"storage.s3.endpoint":          "",
	"storage.s3.prefix":            "",
	"storage.s3.access_key_id":     "",
	"storage.s3.secret_access_key": "",

	"auth.jwt_secret":             "",
	"auth.token_lifetime_minutes": 60 * 24,
	"auth.bcrypt_cost":            10,

	"content.strategy":        "remote",
	"content.merge":           "combine",
	"content.base_url":        "https://jsonplaceholder.typicode.com",
	"content.timeout_seconds": 10,
	"content.pacing_delay_ms": 800,
	"content.max_items":       12,

	"telemetry.otlp_endpoint": "",
	"telemetry.service_name":  "flashdeck",
}

// Load reads configuration from defaults, an optional config.yaml in the
// working directory, an optional .env file and FLASHDECK_ environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit config file. An empty path searches the
// working directory for config.yaml and tolerates its absence.
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags on cfg.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Storage.Backend == "s3" && c.Storage.S3.Bucket == "" {
		return fmt.Errorf("invalid configuration: storage.s3.bucket is required for the s3 backend")
	}
	return nil
}
