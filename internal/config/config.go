package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	JobsFile   string
	JWTSecret  string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "5000"),
		JobsFile:   getEnv("JOBS_FILE", "data/jobs.json"),
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
