// File: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HELPDESK_API_URL", "https://helpdesk.example.com/")
	t.Setenv("HELPDESK_STATE_DIR", "/tmp/helpdesk-test")
	t.Setenv("HELPDESK_TIMEOUT_SECONDS", "5")
	t.Setenv("HELPDESK_MAX_RETRIES", "1")

	cfg := Load()

	// Trailing slash is stripped so path joins stay clean.
	assert.Equal(t, "https://helpdesk.example.com", cfg.BaseURL)
	assert.Equal(t, "/tmp/helpdesk-test", cfg.StateDir)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoad_BadIntegerFallsBack(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HELPDESK_TIMEOUT_SECONDS", "ten")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
