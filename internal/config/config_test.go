package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("ENV", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 12, cfg.PageSize)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 20, cfg.PageSize)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PAGE_SIZE", "lots")
	t.Setenv("SESSION_TTL", "a week")

	cfg := Load()

	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
}
