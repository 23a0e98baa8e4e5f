package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_FILE", "STATIC_DIR", "STORE_BACKEND", "REDIS_KEY", "MAX_BODY_BYTES", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.ListenAddr())
	assert.Equal(t, "users.json", cfg.DataFile)
	assert.Empty(t, cfg.StaticDir)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, "users", cfg.RedisKey)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATA_FILE", "/tmp/people.json")
	t.Setenv("STORE_BACKEND", BackendRedis)
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg := Load()
	assert.Equal(t, ":8081", cfg.ListenAddr())
	assert.Equal(t, "/tmp/people.json", cfg.DataFile)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestLoadBadNumberFallsBack(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "lots")
	assert.Equal(t, int64(1<<20), Load().MaxBodyBytes)

	t.Setenv("MAX_BODY_BYTES", "-5")
	assert.Equal(t, int64(1<<20), Load().MaxBodyBytes)
}
