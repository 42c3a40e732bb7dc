// Package config provides environment-backed configuration for the PlanBot
// transports and bootstrap. The core engine takes no configuration; nothing
// here reaches past the transport boundary.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the transport and bootstrap configuration.
type Config struct {
	// Server settings
	HTTPAddr string // address for the HTTP + WebSocket server

	// Telegram settings
	TelegramToken string

	// WebSocket settings
	PingInterval   time.Duration
	WriteTimeout   time.Duration
	ReadTimeout    time.Duration
	MaxMessageSize int64

	// Logging
	LogLevel  string
	LogFormat string // json or text
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		TelegramToken:  getEnv("TELEGRAM_TOKEN", ""),
		PingInterval:   time.Duration(getEnvInt("WS_PING_INTERVAL_MS", 30000)) * time.Millisecond,
		WriteTimeout:   time.Duration(getEnvInt("WS_WRITE_TIMEOUT_MS", 10000)) * time.Millisecond,
		ReadTimeout:    time.Duration(getEnvInt("WS_READ_TIMEOUT_MS", 60000)) * time.Millisecond,
		MaxMessageSize: int64(getEnvInt("WS_MAX_MESSAGE_SIZE", 65536)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
