package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("METRICS_BUCKETS", "8")
	t.Setenv("METRICS_DUMP", "true")

	cfg := Load()

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Tracing.Disabled)
	assert.Equal(t, 8, cfg.Metrics.Buckets)
	assert.True(t, cfg.Metrics.Dump)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "OTEL_SERVICE_NAME", "OTEL_SDK_DISABLED",
		"OTEL_TRACES_EXPORTER", "OTEL_EXPORTER_OTLP_PROTOCOL", "METRICS_DUMP", "METRICS_BUCKETS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "showcase", cfg.Tracing.ServiceName)
	assert.True(t, cfg.Tracing.Disabled)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
	assert.Equal(t, "grpc", cfg.Tracing.Protocol)
	assert.False(t, cfg.Metrics.Dump)
	assert.Equal(t, 12, cfg.Metrics.Buckets)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"
	defer os.Unsetenv(key)

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"
	defer os.Unsetenv(key)

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
