package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PORT", "LOG_LEVEL", "UPCOMING_RENEWAL_DAYS"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.UpcomingRenewalDays)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("UPCOMING_RENEWAL_DAYS", "7")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 7, cfg.UpcomingRenewalDays)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("UPCOMING_RENEWAL_DAYS", "soon")

	cfg := Load()
	assert.Equal(t, 30, cfg.UpcomingRenewalDays)
}
