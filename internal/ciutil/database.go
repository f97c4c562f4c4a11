package ciutil

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Connection defaults of the Postgres service container used in CI.
const (
	StandardCIUser     = "postgres"
	StandardCIPassword = "postgres"
	StandardCIPort     = "5432"
	StandardCIDatabase = "flashdeck_test"
	StandardCIOptions  = "sslmode=disable"
)

// GetTestDatabaseURL returns the Postgres URL for integration tests, or ""
// when none is configured. In CI the credentials, port, database name and
// options are normalized to the service container defaults.
func GetTestDatabaseURL(logger *slog.Logger) string {
	dbURL := GetEnvWithFallbacks([]string{EnvTestDatabaseURL, EnvDatabaseURL}, "", logger)
	if dbURL == "" || !IsCI() {
		return dbURL
	}

	standardized, err := standardizeDatabaseURL(dbURL)
	if err != nil {
		if logger != nil {
			logger.Error("Failed to standardize database URL",
				"error", err,
				"original_url", MaskSensitiveValue(dbURL))
		}
		return dbURL
	}
	if standardized != dbURL && logger != nil {
		logger.Info("Standardized database URL for CI environment",
			"original", MaskSensitiveValue(dbURL),
			"standardized", MaskSensitiveValue(standardized))
	}
	return standardized
}

// standardizeDatabaseURL applies the CI defaults to a postgres URL. Other
// schemes are returned unchanged.
func standardizeDatabaseURL(dbURL string) (string, error) {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}
	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return dbURL, nil
	}

	out := *parsed
	out.User = url.UserPassword(StandardCIUser, StandardCIPassword)

	host := parsed.Hostname()
	if parsed.Port() == "" && (host == "" || host == "localhost" || host == "127.0.0.1") {
		if host == "" {
			host = "localhost"
		}
		out.Host = host + ":" + StandardCIPort
	}
	if strings.TrimPrefix(parsed.Path, "/") == "" {
		out.Path = "/" + StandardCIDatabase
	}
	if parsed.RawQuery == "" {
		out.RawQuery = StandardCIOptions
	}

	return out.String(), nil
}
