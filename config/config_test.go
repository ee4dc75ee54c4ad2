package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.RegionCacheTTL)
	assert.Empty(t, cfg.ExtraCORSOrigins)
}

func TestLoadConfigRegionCacheTTL(t *testing.T) {
	t.Setenv("REGION_CACHE_TTL", "120")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.RegionCacheTTL)
}

func TestLoadConfigMalformedRegionCacheTTL(t *testing.T) {
	for _, value := range []string{"abc", "0", "-5", "5m"} {
		t.Setenv("REGION_CACHE_TTL", value)
		_, err := LoadConfig()
		assert.Error(t, err, value)
	}
}

func TestLoadConfigExtraCORSOrigins(t *testing.T) {
	t.Setenv("CORS_EXTRA_ORIGINS", " https://staging.citysresidences.com/ ,https://preview.citysresidences.com")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://staging.citysresidences.com",
		"https://preview.citysresidences.com",
	}, cfg.ExtraCORSOrigins)
}
