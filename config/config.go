package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, loaded from environment
// variables with an optional .env file for local runs.
type Config struct {
	Port string

	// RedisAddr empty selects the in-process cache.
	RedisAddr string
	CacheTTL  time.Duration

	// OpenAIAPIKey empty disables model-backed risk extraction.
	OpenAIAPIKey string
	OpenAIModel  string

	RateLimit       int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment. Every value has a
// working default; nothing is required.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		CacheTTL:        getEnvAsDuration("CACHE_TTL", 24*time.Hour),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		RateLimit:       getEnvAsInt("RATE_LIMIT", 60),
		RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using default %s", key, raw, fallback)
		return fallback
	}
	return value
}
