package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	HTTPAddr     string
	RedisAddr    string // empty means in-memory sessions
	SessionTTL   time.Duration
	LogFile      string // empty means stderr only
	LogToConsole bool
}

// Load loads the configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080" // Default listen address
	}

	ttlHours := 24
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL_HOURS value: %q", v)
		}
		ttlHours = parsed
	}

	logToConsole := true
	if v := os.Getenv("LOG_TO_CONSOLE"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_TO_CONSOLE value: %q", v)
		}
		logToConsole = parsed
	}

	return &Config{
		HTTPAddr:     httpAddr,
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		SessionTTL:   time.Duration(ttlHours) * time.Hour,
		LogFile:      os.Getenv("LOG_FILE"),
		LogToConsole: logToConsole,
	}, nil
}
