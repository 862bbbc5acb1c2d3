package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	require.Equal(t, "http://127.0.0.1:8080", cfg.SiteAPIURL)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRedisBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6380")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, StoreBackendRedis, cfg.StoreBackend)
	require.Equal(t, "127.0.0.1:6380", cfg.RedisAddr)
}
