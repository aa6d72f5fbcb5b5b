package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// Model layer
	LLMProvider     string // "anthropic", "openai" or "gemini"
	ModelName       string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	GeminiAPIKey    string

	// Scene imagery
	VeniceImageAPIKey string

	// Storage
	RedisURL string

	// Evidence catalog; empty uses the built-in case
	CatalogPath string

	// Optional on-chain progress relay; empty disables it
	ChainRelayURL string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LLMProvider:       getEnv("LLM_PROVIDER", "anthropic"),
		ModelName:         getEnv("MODEL_NAME", ""),
		AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		VeniceImageAPIKey: getEnv("VENICE_IMAGE_API_KEY", ""),
		RedisURL:          getEnv("REDIS_URL", "localhost:6379"),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		ChainRelayURL:     getEnv("CHAIN_RELAY_URL", ""),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
