package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldclock/internal/worldclock"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"US/Eastern", "US/Pacific", "Europe/Paris", "Asia/Kolkata", "Asia/Tokyo"}, cfg.ReferenceZones)
	assert.Equal(t, 5, cfg.ClockCount)
	assert.Equal(t, worldclock.Hour12, cfg.HourStyle())
	assert.Equal(t, time.Second, cfg.RefreshInterval())
	assert.Equal(t, 128, cfg.ZoneCacheSize)
	assert.Empty(t, cfg.LocalTimezone)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.EnvFile)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SITE_NAME=Team Clocks\n"), 0o644))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("SITE_NAME") })

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.EnvFile)
	assert.Equal(t, "Team Clocks", cfg.SiteName)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOCAL_TIMEZONE", "Asia/Tokyo")
	t.Setenv("REFERENCE_ZONES", "UTC,Europe/London")
	t.Setenv("CLOCK_COUNT", "3")
	t.Setenv("HOUR_FORMAT", "24h")
	t.Setenv("REFRESH_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "Asia/Tokyo", cfg.LocalTimezone)
	assert.Equal(t, []string{"UTC", "Europe/London"}, cfg.ReferenceZones)
	assert.Equal(t, 3, cfg.ClockCount)
	assert.Equal(t, worldclock.Hour24, cfg.HourStyle())
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"CLOCK_COUNT":     "0",
		"REFRESH_SECONDS": "-1",
		"ZONE_CACHE_SIZE": "0",
		"HOUR_FORMAT":     "13-hour",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("CLOCK_COUNT", "five")
		_, err := Load()
		assert.Error(t, err)
	})
}
