package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR_UNSET", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42), "Should return default for invalid integer")
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR_UNSET", 5*time.Minute))
	})

	t.Run("parses valid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "750ms")
		assert.Equal(t, 750*time.Millisecond, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("returns default for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "soon")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "1")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))

	t.Setenv("TEST_BOOL_VAR", "maybe")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true), "invalid values fall back to the default")
}
