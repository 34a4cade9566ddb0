package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every process-level setting. It is built once in run() and
// passed by injection; nothing below reads the environment after Load.
type Config struct {
	Port          string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTTTLHours   int     // access token lifetime
	UploadDir     string  // local directory backing the /uploads mount
	WorkerCount   int     // background cleanup workers
	AuthRateRPS   float64 // per-IP rate limit on login/signup
	AuthRateBurst int
}

// Load reads .env when present, then the environment. Connection settings
// have no defaults and are validated here so startup fails fast.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTTTLHours:   getEnvInt("JWT_TTL_HOURS", 24),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		WorkerCount:   getEnvInt("WORKER_COUNT", 1),
		AuthRateRPS:   getEnvFloat("AUTH_RATE_RPS", 5),
		AuthRateBurst: getEnvInt("AUTH_RATE_BURST", 10),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("WORKER_COUNT must be positive")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
