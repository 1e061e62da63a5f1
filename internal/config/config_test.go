package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gsk_test", cfg.Clients.OpenAI.ApiKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Clients.OpenAI.BaseUrl)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Clients.OpenAI.Model)
	assert.Equal(t, 0.8, cfg.Clients.OpenAI.Temperature)
	assert.Equal(t, int64(2048), cfg.Clients.OpenAI.MaxTokens)
	assert.Equal(t, 5*time.Second, cfg.Clients.Website.Timeout)
	assert.Equal(t, 2000, cfg.Clients.Website.MaxChars)
	assert.Equal(t, "Mozilla/5.0 (compatible; ReportBuilder/1.0)", cfg.Clients.Website.UserAgent)
	assert.Equal(t, 500*time.Millisecond, cfg.Clients.Browser.SettleDelay)
	assert.Equal(t, time.Second, cfg.Bulk.Pacing)
	assert.Equal(t, "November 2024", cfg.Report.Period)
	assert.Empty(t, cfg.Infrastructure.Redis.Address)
}

func TestLoadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
report:
  period: "December 2025"
bulk:
  pacing: 250ms
infrastructure:
  redis:
    address: "localhost:6379"
`), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Http.Address)
	assert.Equal(t, "December 2025", cfg.Report.Period)
	assert.Equal(t, 250*time.Millisecond, cfg.Bulk.Pacing)
	assert.Equal(t, "localhost:6379", cfg.Infrastructure.Redis.Address)
	assert.Equal(t, "wrapped:job:", cfg.Infrastructure.Redis.Prefix)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
