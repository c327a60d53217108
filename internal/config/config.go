package config

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// TracingConfig holds OpenTelemetry settings.
// Tracing is off unless OTEL_SDK_DISABLED is explicitly set to false.
type TracingConfig struct {
	ServiceName string
	Disabled    bool
	Exporter    string
	Protocol    string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables and never changes what the demos print.
type AppConfig struct {
	Log     LogConfig
	Tracing TracingConfig
	Metrics MetricsConfig
}

// MetricsConfig holds in-process Prometheus settings.
type MetricsConfig struct {
	// Dump writes the gathered registry to stderr in text format on exit.
	Dump bool
	// Buckets is the number of exponential histogram buckets, starting at 10µs.
	Buckets int
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Tracing: TracingConfig{
			ServiceName: getEnv("OTEL_SERVICE_NAME", "showcase"),
			Disabled:    getEnvBool("OTEL_SDK_DISABLED", true),
			Exporter:    strings.ToLower(getEnv("OTEL_TRACES_EXPORTER", "none")),
			Protocol:    getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		},
		Metrics: MetricsConfig{
			Dump:    getEnvBool("METRICS_DUMP", false),
			Buckets: getEnvInt("METRICS_BUCKETS", 12),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
