package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://geomag.bgs.ac.uk/web_service/GMModels", cfg.BGSBaseURL)
	assert.Equal(t, "wmm", cfg.BGSModel)
	assert.Equal(t, "current", cfg.BGSRevision)
	assert.Equal(t, 10*time.Second, cfg.BGSTimeout)
	assert.Equal(t, 1000, cfg.BGSCacheSize)
}

func TestLoadCustomEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BGS_BASE_URL", "http://localhost:8081")
	t.Setenv("BGS_MODEL", "igrf")
	t.Setenv("BGS_REVISION", "14")
	t.Setenv("BGS_TIMEOUT", "5s")
	t.Setenv("BGS_CACHE_SIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8081", cfg.BGSBaseURL)
	assert.Equal(t, "igrf", cfg.BGSModel)
	assert.Equal(t, "14", cfg.BGSRevision)
	assert.Equal(t, 5*time.Second, cfg.BGSTimeout)
	assert.Equal(t, 50, cfg.BGSCacheSize)
}

func TestLoadInvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoadNonPositiveTimeout(t *testing.T) {
	t.Setenv("BGS_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BGS_TIMEOUT")
}

func TestLoadInvalidModel(t *testing.T) {
	t.Setenv("BGS_MODEL", "emm")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid BGS_MODEL")
}

func TestLoadCacheSize(t *testing.T) {
	t.Run("zero disables the cache", func(t *testing.T) {
		t.Setenv("BGS_CACHE_SIZE", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.BGSCacheSize)
	})

	t.Run("garbage falls back to the default", func(t *testing.T) {
		t.Setenv("BGS_CACHE_SIZE", "lots")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.BGSCacheSize)
	})

	t.Run("negative falls back to the default", func(t *testing.T) {
		t.Setenv("BGS_CACHE_SIZE", "-5")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.BGSCacheSize)
	})
}
