package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Search   SearchConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

// ProviderConfig bounds calls against the YouTube resolution provider.
// The timeout covers metadata resolution and stream-open, not the byte
// relay itself, which runs for as long as the client keeps reading.
type ProviderConfig struct {
	RequestTimeout time.Duration
}

type SearchConfig struct {
	APIKey   string
	MaxLimit int64
}

type CORSConfig struct {
	AllowedOrigins []string
	MaxAge         time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")

	// Resolution provider configuration
	providerTimeout, err := time.ParseDuration(getEnv("PROVIDER_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.Provider.RequestTimeout = providerTimeout

	// Search provider configuration. The API key is optional so the
	// info/download paths work without one; search fails at call time.
	cfg.Search.APIKey = getEnv("YOUTUBE_API_KEY", "")
	cfg.Search.MaxLimit = int64(getEnvInt("SEARCH_MAX_LIMIT", 50))
	if cfg.Search.MaxLimit < 1 {
		return nil, fmt.Errorf("invalid SEARCH_MAX_LIMIT: must be >= 1")
	}

	// CORS configuration
	cfg.CORS.AllowedOrigins = []string{getEnv("CORS_ALLOWED_ORIGINS", "*")}
	corsMaxAge, err := time.ParseDuration(getEnv("CORS_MAX_AGE", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CORS_MAX_AGE: %w", err)
	}
	cfg.CORS.MaxAge = corsMaxAge

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
