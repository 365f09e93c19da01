package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "APP_ENV", "REDIS_ADDR", "CACHE_TTL", "RATE_LIMIT_PER_SECOND", "PLANNER_DEFAULT_FEE_PCT", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.UsesRedis())
	assert.Equal(t, 20.0, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, "3", cfg.Planner.DefaultFeePct.String())
	assert.Equal(t, "12", cfg.Planner.DefaultIntroMonths.String())
	assert.Equal(t, 6, cfg.Planner.DashboardTopN)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("PLANNER_DEFAULT_FEE_PCT", "4.5")
	t.Setenv("PLANNER_MAX_ACCOUNTS", "50")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address())
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Cache.UsesRedis())
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 2.5, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, "4.5", cfg.Planner.DefaultFeePct.String())
	assert.Equal(t, 50, cfg.Planner.MaxAccounts)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PLANNER_MAX_ACCOUNTS", "lots")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("CACHE_ENABLED", "maybe")
	t.Setenv("PLANNER_DEFAULT_INTRO_MONTHS", "twelve")

	cfg := Load()

	assert.Equal(t, 200, cfg.Planner.MaxAccounts)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "12", cfg.Planner.DefaultIntroMonths.String())
}

func TestCacheConfig_DisabledIgnoresRedis(t *testing.T) {
	c := CacheConfig{Enabled: false, RedisAddr: "redis:6379"}
	assert.False(t, c.UsesRedis())
}
