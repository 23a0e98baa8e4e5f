package config

import (
	"os"
	"strconv"
)

// Store backends accepted in STORE_BACKEND.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds all server configuration loaded from environment variables.
type Config struct {
	Port          string // TCP port to listen on
	DataFile      string // Path of the JSON collection for the file backend
	StaticDir     string // Optional directory overriding the embedded pages
	StoreBackend  string // "file" or "redis"
	RedisAddr     string // Redis address for the redis backend
	RedisPassword string // Redis password, empty for none
	RedisKey      string // Redis key holding the collection
	MaxBodyBytes  int64  // Maximum size of a mutation request body
	LogLevel      string // logrus level name
	LogFormat     string // "text" or "json"
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() *Config {
	return &Config{
		Port:          envOrDefault("PORT", "3000"),
		DataFile:      envOrDefault("DATA_FILE", "users.json"),
		StaticDir:     envOrDefault("STATIC_DIR", ""),
		StoreBackend:  envOrDefault("STORE_BACKEND", BackendFile),
		RedisAddr:     envOrDefault("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: envOrDefault("REDIS_PASSWORD", ""),
		RedisKey:      envOrDefault("REDIS_KEY", "users"),
		MaxBodyBytes:  envOrDefaultInt64("MAX_BODY_BYTES", 1<<20),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
	}
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
