package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.WizardTTL)
	assert.Equal(t, 2*time.Second, cfg.AirtelConfirmDelay)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WIZARD_TTL", "5m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AIRTEL_CONFIRM_DELAY", "10ms")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.WizardTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 10*time.Millisecond, cfg.AirtelConfirmDelay)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("WIZARD_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 30*time.Minute, cfg.WizardTTL)
}
