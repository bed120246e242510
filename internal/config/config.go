package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"` // API key for the admin API
	MenusDir    string `validate:"required"`
	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	AutoReload     bool
	ReloadDebounce time.Duration `validate:"min=0"`

	SessionTTL      time.Duration `validate:"gt=0"`
	SessionCapacity int           `validate:"min=1"`

	OpenPermissionPrefix string

	// Admin API client limits. RateLimit 0 disables the request limit.
	RateLimit       int           `validate:"min=0"`
	RateLimitWindow time.Duration `validate:"gt=0"`
	FailedAuthAlert int           `validate:"min=1"`
	TrustedProxies  []string      `validate:"dive,ip"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:               getEnv(EnvAPIKey, ""),
		MenusDir:             getEnv(EnvMenusDir, DefaultMenusDir),
		LogLevel:             strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:            strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:          getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:          getEnv(EnvServiceName, DefaultServiceName),
		Version:              getEnv(EnvVersion, DefaultVersion),
		AutoReload:           getEnvAsBool(EnvAutoReload, false),
		ReloadDebounce:       getEnvAsDuration(EnvReloadDebounce, DefaultReloadDebounce),
		SessionTTL:           getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		SessionCapacity:      getEnvAsInt(EnvSessionCapacity, DefaultSessionCapacity),
		OpenPermissionPrefix: getEnv(EnvOpenPermissionPrefix, DefaultOpenPermissionPrefix),
		RateLimit:            getEnvAsInt(EnvRateLimit, DefaultRateLimit),
		RateLimitWindow:      getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		FailedAuthAlert:      getEnvAsInt(EnvFailedAuthAlert, DefaultFailedAuthAlert),
		TrustedProxies:       getEnvAsList(EnvTrustedProxies),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags of the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool returns the default when the variable is unset or not a boolean
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the default when the variable is unset or not a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
