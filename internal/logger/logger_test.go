package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestTextLoggingRespectsLevel(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(NewConfig(LogLevelWarn, LogFormatText, "svc", "v", EnvironmentTest, false), &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestContextIDs(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig(LogLevelInfo, LogFormatJSON, "svc", "v", EnvironmentTest, false), &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	ctx = WithReloadID(ctx, "reload-456")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	id, ok := ReloadIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "reload-456", id)

	FromContext(ctx).Info("tagged")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry[AttrKeyRequestID])
	assert.Equal(t, "reload-456", entry[AttrKeyReloadID])
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.ReplaceAll(a, "-", ""), 32)
}

func TestConfigPresets(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := DefaultConfig()
		assert.Equal(t, DefaultServiceName, config.ServiceName)
		assert.Equal(t, slog.LevelInfo, config.LogLevel())
		assert.False(t, config.IsJSON())
	})

	t.Run("production", func(t *testing.T) {
		config := ProductionConfig()
		assert.True(t, config.IsJSON())
		assert.Equal(t, EnvironmentProduction, config.Environment)
		assert.False(t, config.AddSource)
	})

	t.Run("development", func(t *testing.T) {
		config := DevelopmentConfig()
		assert.Equal(t, slog.LevelDebug, config.LogLevel())
		assert.True(t, config.AddSource)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		assert.Equal(t, slog.LevelInfo, Config{Level: "verbose"}.LogLevel())
		assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
	})
}
