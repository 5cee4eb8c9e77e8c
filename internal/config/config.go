package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka (empty disables event publishing)
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Sessions
	SessionSecret string
	SessionMaxAge int // seconds; sliding window

	// CORS
	AllowedOrigins string

	// Environment
	Env      string
	LogLevel string
	LogDir   string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "sqlite://storefront.db"),
		KafkaBrokers:   getEnv("KAFKA_BROKERS", ""),
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		SessionSecret:  getEnv("SESSION_SECRET", "storefront-dev-session-secret"),
		SessionMaxAge:  getEnvAsInt("SESSION_MAX_AGE", 7*24*3600),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogDir:         getEnv("LOG_DIR", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
