package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	RedisURL       string
	ListenAddr     string
	PageSize       int // users per listing page
	RateLimitRPS   float64
	RateLimitBurst int
	LogLevel       int

	// DefaultUserPassword is a placeholder credential: every created or
	// updated user gets a hash of this value instead of a user-supplied
	// password. Review before any real deployment.
	DefaultUserPassword string
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		ListenAddr:          getEnv("LISTEN_ADDR", ":8080"),
		PageSize:            getEnvInt("PAGE_SIZE", 5),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 20),
		LogLevel:            getEnvInt("LOG_LEVEL", 0),
		DefaultUserPassword: getEnv("DEFAULT_USER_PASSWORD", "default_password"),
	}
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
