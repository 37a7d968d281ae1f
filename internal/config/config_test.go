package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GENAI_MODEL", "gemini-test")

	cfg := Load()
	require.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "gemini-test", cfg.LLM.Model)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerWindow)
	assert.Equal(t, 8, cfg.Inventory.BulkWorkers)
	assert.InDelta(t, 0.2, float64(cfg.LLM.IntentTemperature), 1e-6)
	assert.Same(t, cfg, Load(), "config is loaded once")
}

func TestDurations(t *testing.T) {
	assert.Equal(t, 15*time.Second, LLMConfig{}.Timeout())
	assert.Equal(t, 5*time.Second, LLMConfig{TimeoutSeconds: 5}.Timeout())
	assert.Equal(t, time.Minute, RateLimitConfig{}.Window())
	assert.Equal(t, 10*time.Second, RateLimitConfig{WindowSeconds: 10}.Window())
}
