package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Server.FrontendURL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8000", cfg.Client.APIURL)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, int32(300), cfg.LLM.MaxOutputTokens)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30, cfg.RateLimit.AnalyzeLimit)
	assert.Equal(t, time.Hour, cfg.RateLimit.AnalyzeWindow)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
server:
  port: 9090
  frontend_url: https://pathfinder.example.com
llm:
  model: gemini-2.5-pro
  temperature: 0.2
redis:
  addr: localhost:6379
  ttl: 10m
log:
  format: json
rate_limit:
  analyze_limit: 5
  whitelist: ["10.0.0.1"]
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://pathfinder.example.com", cfg.Server.FrontendURL)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5, cfg.RateLimit.AnalyzeLimit)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.RateLimit.Whitelist)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PATHFINDER_SERVER_PORT", "7000")
	t.Setenv("PATHFINDER_CLIENT_API_URL", "http://api:8000")
	t.Setenv("PATHFINDER_LLM_API_KEY", "from-prefix")
	t.Setenv("GEMINI_API_KEY", "from-gemini")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "http://api:8000", cfg.Client.APIURL)
	assert.Equal(t, "from-prefix", cfg.LLM.APIKey)
}

func TestLoad_GeminiKeyFallback(t *testing.T) {
	t.Setenv("PATHFINDER_LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "from-gemini")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-gemini", cfg.LLM.APIKey)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("PATHFINDER_SERVER_PORT", "70000")
	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "server.port")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"relative frontend url", func(c *Config) { c.Server.FrontendURL = "localhost" }, "server.frontend_url"},
		{"bad api url", func(c *Config) { c.Client.APIURL = "::" }, "client.api_url"},
		{"negative temperature", func(c *Config) { c.LLM.Temperature = -1 }, "llm.temperature"},
		{"zero tokens", func(c *Config) { c.LLM.MaxOutputTokens = 0 }, "llm.max_output_tokens"},
		{"cache without ttl", func(c *Config) { c.Redis.Addr = "localhost:6379"; c.Redis.TTL = 0 }, "redis.ttl"},
		{"ttl ignored without cache", func(c *Config) { c.Redis.TTL = 0 }, ""},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"zero timeout", func(c *Config) { c.Client.Timeout = 0 }, "client.timeout"},
		{"zero analyze limit", func(c *Config) { c.RateLimit.AnalyzeLimit = 0 }, "rate_limit.analyze_limit"},
		{"limits ignored when disabled", func(c *Config) { c.RateLimit.Enabled = false; c.RateLimit.DefaultLimit = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PATHFINDER_TEST_VALUE=loaded\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("PATHFINDER_TEST_VALUE") })

	loaded, err := LoadEnvFile(filepath.Join(dir, "missing.env"), envPath)
	require.NoError(t, err)
	assert.Equal(t, envPath, loaded)
	assert.Equal(t, "loaded", os.Getenv("PATHFINDER_TEST_VALUE"))

	loaded, err = LoadEnvFile(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
