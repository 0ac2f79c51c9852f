package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/request-params/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 20.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 40, cfg.RateLimit.Burst)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, config.ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.HasCheck(config.CheckCatalog))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PARAMS_PRIMARY__ENV", "production")
	t.Setenv("PARAMS_SERVER__PORT", "9090")
	t.Setenv("PARAMS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("PARAMS_RATE_LIMIT__ENABLED", "false")
	t.Setenv("PARAMS_RATE_LIMIT__REQUESTS_PER_SECOND", "2.5")
	t.Setenv("PARAMS_RATE_LIMIT__EXPIRES_IN", "10m")
	t.Setenv("PARAMS_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("PARAMS_OBSERVABILITY__HEALTH_CHECKS__TIMEOUT", "2s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.ExpiresIn)

	// Untouched values keep their defaults.
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, 2*time.Second, cfg.Observability.HealthChecks.Timeout)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfig_Lists(t *testing.T) {
	t.Setenv("PARAMS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,https://c.example")
	t.Setenv("PARAMS_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "catalog")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, []string{"catalog"}, cfg.Observability.HealthChecks.Checks)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "PARAMS_SERVER__PORT", "http"},
		{"zero rate", "PARAMS_RATE_LIMIT__REQUESTS_PER_SECOND", "0"},
		{"unknown log level", "PARAMS_OBSERVABILITY__LOGGING__LEVEL", "verbose"},
		{"unknown log format", "PARAMS_OBSERVABILITY__LOGGING__FORMAT", "xml"},
		{"unknown health check", "PARAMS_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "catalog,database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HasCheck(config.CheckCatalog))
}
