package config

import "time"

// Environment variable names
const (
	EnvPort                 = "PORT"
	EnvAPIKey               = "API_KEY"
	EnvMenusDir             = "MENUS_DIR"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvAutoReload           = "AUTO_RELOAD"
	EnvReloadDebounce       = "RELOAD_DEBOUNCE"
	EnvSessionTTL           = "SESSION_TTL"
	EnvSessionCapacity      = "SESSION_CAPACITY"
	EnvOpenPermissionPrefix = "OPEN_PERMISSION_PREFIX"
	EnvRateLimit            = "RATE_LIMIT"
	EnvRateLimitWindow      = "RATE_LIMIT_WINDOW"
	EnvFailedAuthAlert      = "FAILED_AUTH_ALERT"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort                 = "8080"
	DefaultMenusDir             = "menus"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "chest-menus"
	DefaultVersion              = "dev"
	DefaultReloadDebounce       = 500 * time.Millisecond
	DefaultSessionTTL           = 30 * time.Minute
	DefaultSessionCapacity      = 1000
	DefaultOpenPermissionPrefix = "chestmenus.open."
	DefaultRateLimit            = 1000
	DefaultRateLimitWindow      = 5 * time.Minute
	DefaultFailedAuthAlert      = 5
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
