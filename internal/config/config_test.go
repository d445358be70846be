package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
env: test
http_server:
  addresshttp: ":9090"
  timeouthttp: 30s
  idle_timeout: 60s
  public_url: "https://app.example"
backend:
  base_url: "https://backend.example"
  timeout: 5s
telegram:
  bot_token: "123:abc"
  bot_username: "gifts_bot"
  init_data_ttl: 1h
redis_connection:
  addressredis: "localhost:6379"
  password: "redis_pass"
  db: 1
  max_retries: 3
  dial_timeout: 5s
  timeoutredis: 10s
image_proxy:
  allowed_hosts: ["cdn.changes.tg", "cdn.example"]
  cache_entries: 64
rate_limit:
  rps: 2
  burst: 4
cache:
  catalog: 12h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":9090", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, "https://app.example", cfg.PublicURL)
	assert.Equal(t, "https://backend.example", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "gifts_bot", cfg.BotUsername)
	assert.Equal(t, time.Hour, cfg.InitDataTTL)
	assert.Equal(t, "localhost:6379", cfg.AddressRedis)
	assert.Equal(t, 1, cfg.DB)
	assert.Equal(t, 10*time.Second, cfg.TimeoutRedis)
	assert.Equal(t, []string{"cdn.changes.tg", "cdn.example"}, cfg.AllowedHosts)
	assert.Equal(t, 64, cfg.CacheEntries)
	assert.Equal(t, 2.0, cfg.RPS)
	assert.Equal(t, 4, cfg.Burst)
	assert.Equal(t, 12*time.Hour, cfg.Catalog)
}

func TestLoad_DefaultValues(t *testing.T) {
	path := writeConfig(t, `
backend:
  base_url: "https://backend.example"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, 15*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "giftoutfit_bot", cfg.BotUsername)
	assert.Equal(t, 24*time.Hour, cfg.InitDataTTL)
	assert.Equal(t, "", cfg.AddressRedis)
	assert.Equal(t, []string{"cdn.changes.tg"}, cfg.AllowedHosts)
	assert.Equal(t, 512, cfg.CacheEntries)
	assert.Equal(t, 24*time.Hour, cfg.Catalog)
	assert.Equal(t, 5*time.Minute, cfg.Grids)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	// base_url обязателен
	path := writeConfig(t, "env: test\n")
	t.Setenv("BACKEND_BASE_URL", "")
	_, err = Load(path)
	assert.Error(t, err)

	// пустое значение в файле и в окружении
	path = writeConfig(t, "env: test\nbackend:\n  base_url: \"\"\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, "backend.base_url is required")
}

func TestString_MasksBotToken(t *testing.T) {
	cfg := &Config{Telegram: Telegram{BotToken: "123:secret"}}
	s := cfg.String()
	assert.NotContains(t, s, "123:secret")
	assert.Contains(t, s, "BotToken: ***")
}
