// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// BaseURL is the root of the helpdesk backend, e.g. http://127.0.0.1:8000
	BaseURL string
	// StateDir holds the credential database (the browser kept this in localStorage).
	StateDir string
	// RequestTimeout bounds a single conversation-list fetch attempt.
	RequestTimeout time.Duration
	// MaxRetries is the number of additional attempts after a transient failure.
	MaxRetries  int
	Environment string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		BaseURL:        getEnv("HELPDESK_API_URL", "http://127.0.0.1:8000"),
		StateDir:       getEnv("HELPDESK_STATE_DIR", defaultStateDir()),
		RequestTimeout: time.Duration(getEnvAsInt("HELPDESK_TIMEOUT_SECONDS", 10)) * time.Second,
		MaxRetries:     getEnvAsInt("HELPDESK_MAX_RETRIES", 3),
		Environment:    env,
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".helpdesk"
	}
	return filepath.Join(home, ".helpdesk")
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
