// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	AI        AIConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// RedisConfig holds Redis configuration for the chat history store.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// AIConfig holds the advice service configuration. When GatewayURL is set
// the OpenAI-compatible gateway is used; otherwise GeminiAPIKey selects the
// Gemini client. With neither, advice falls back to canned replies.
type AIConfig struct {
	GeminiAPIKey   string
	GeminiModel    string
	GatewayURL     string
	GatewayAPIKey  string
	GatewayModel   string
	RequestTimeout time.Duration
}

// RateLimitConfig holds per-client limits for the advice endpoint.
type RateLimitConfig struct {
	AdviceRequestsPerMinute int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		AI: AIConfig{
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			GatewayURL:     getEnv("AI_GATEWAY_URL", ""),
			GatewayAPIKey:  getEnv("AI_GATEWAY_API_KEY", ""),
			GatewayModel:   getEnv("AI_GATEWAY_MODEL", "gpt-4o-mini"),
			RequestTimeout: getEnvAsDuration("AI_REQUEST_TIMEOUT", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			AdviceRequestsPerMinute: getEnvAsInt("ADVICE_RATE_LIMIT_PER_MINUTE", 10),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
