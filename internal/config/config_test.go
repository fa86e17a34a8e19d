package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/healthcare?sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 6371.0, cfg.Search.Geo.EarthRadiusKm)
	assert.Equal(t, 50.0, cfg.Search.Geo.DefaultRadiusKm)
	assert.Equal(t, 14, cfg.Search.Availability.LookaheadDays)
	assert.Equal(t, 5, cfg.Search.Availability.MaxAlternatives)
	assert.Len(t, cfg.Search.Availability.Slots, 6)
	assert.Equal(t, 500.0, cfg.Booking.ServiceFee)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, RateLimitConfig{PerMinute: 60, Burst: 10, IdleTTL: 10 * time.Minute}, cfg.RateLimit)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/healthcare")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SEARCH_RADIUS_KM", "25.5")
	t.Setenv("LOOKAHEAD_DAYS", "7")
	t.Setenv("MAX_ALTERNATIVE_DATES", "3")
	t.Setenv("TIME_SLOTS", "08:00,13:30")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CRON_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25.5, cfg.Search.Geo.DefaultRadiusKm)
	assert.Equal(t, 7, cfg.Search.Availability.LookaheadDays)
	assert.Equal(t, 3, cfg.Search.Availability.MaxAlternatives)
	require.Len(t, cfg.Search.Availability.Slots, 2)
	assert.Equal(t, "1:30 PM", cfg.Search.Availability.Slots[1].Label)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.CronEnabled)
	assert.Equal(t, 5, cfg.RateLimit.PerMinute)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10"}, cfg.RateLimit.TrustedProxies)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/healthcare")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TIME_SLOTS", "nine")
	_, err = Load()
	assert.ErrorContains(t, err, "TIME_SLOTS")
}
