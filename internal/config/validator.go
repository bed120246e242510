package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvAPIKey,
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvAPIKey) == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if _, err := os.Stat(getEnv(EnvMenusDir, DefaultMenusDir)); err != nil {
		warnings = append(warnings, fmt.Sprintf("MENUS_DIR is not readable yet: %v", err))
	}

	return warnings, nil
}
