package logger

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/request-params/internal/config"
)

func TestNewLoggerService_WithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, svc.GetApplication())
	assert.NotPanics(t, svc.Shutdown)
}

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := newLogger(cfg, &LoggerService{}, &buf)

	logger.Info().Msg("dropped")
	logger.Warn().Str("route", "/search/").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "/search/", entry["route"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "development", entry["environment"])
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"

	var buf bytes.Buffer
	logger := newLogger(cfg, nil, &buf)
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.DefaultObservabilityConfig(), nil, &buf)

	traced := WithTraceContext(logger, nil)
	traced.Info().Msg("no trace")

	assert.Contains(t, buf.String(), "no trace")

	assert.NotContains(t, buf.String(), "trace.id")
}
