// Package config loads service settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/metocean-kit/bgs"
)

// Config holds all service settings, populated from environment
// variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// BGS geomagnetism client configuration.
	BGSBaseURL   string
	BGSModel     string
	BGSRevision  string
	BGSTimeout   time.Duration
	BGSCacheSize int
}

// Load reads configuration from environment variables, applying
// defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	bgsTimeout, err := parseDuration("BGS_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		BGSBaseURL:   envOrDefault("BGS_BASE_URL", "https://geomag.bgs.ac.uk/web_service/GMModels"),
		BGSModel:     envOrDefault("BGS_MODEL", bgs.ModelWMM),
		BGSRevision:  envOrDefault("BGS_REVISION", "current"),
		BGSTimeout:   bgsTimeout,
		BGSCacheSize: parseCacheSize(),
	}

	switch cfg.BGSModel {
	case bgs.ModelWMM, bgs.ModelIGRF, bgs.ModelBGGM:
	default:
		return nil, fmt.Errorf("invalid BGS_MODEL %q (want wmm, igrf, or bggm)", cfg.BGSModel)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

// parseCacheSize returns BGS_CACHE_SIZE or 1000; a value of 0 disables
// the declination cache. Unparseable values fall back to the default.
func parseCacheSize() int {
	if s := os.Getenv("BGS_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n
		}
	}
	return 1000
}
