package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_PRIMARY.ENV", "production")
	t.Setenv("PORTFOLIO_SERVER.PORT", "8080")
	t.Setenv("PORTFOLIO_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://portfolio.dev")
	t.Setenv("PORTFOLIO_DATABASE.NAME", "portfolio_test")
	t.Setenv("PORTFOLIO_DATABASE.MAX_OPEN_CONNS", "4")
	t.Setenv("PORTFOLIO_UPLOAD.IMAGE_PROCESSING", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://portfolio.dev"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "portfolio_test", cfg.Database.Name)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Upload.ImageProcessing)

	// untouched defaults survive the unmarshal
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 10, cfg.Upload.MaxFiles)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestConfigValidate_RejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Observability = DefaultObservabilityConfig()
	cfg.Observability.Logging.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestConfigValidate_RejectsInvalidNotifyEmail(t *testing.T) {
	cfg := Default()
	cfg.Integration.NotifyEmail = "not-an-address"

	require.Error(t, cfg.Validate())
}

func TestObservability_HasCheck(t *testing.T) {
	obs := DefaultObservabilityConfig()
	assert.True(t, obs.HasCheck("database"))
	assert.False(t, obs.HasCheck("queue"))

	obs.HealthChecks.Enabled = false
	assert.False(t, obs.HasCheck("database"))

	obs.HealthChecks.Enabled = true
	obs.HealthChecks.Timeout = 10 * time.Millisecond
	assert.Error(t, obs.Validate())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Empty(t, splitList(""))
}
