package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, types.DefaultBaseURL, cfg.OpenRouter.BaseURL)
	assert.Equal(t, types.DefaultAppTitle, cfg.OpenRouter.AppTitle)
	assert.Zero(t, cfg.OpenRouter.Timeout)
	assert.Equal(t, CredentialBackendMemory, cfg.Credential.Backend)
	assert.False(t, cfg.UsesRedis())
	assert.False(t, cfg.Storage.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiry)
	assert.Equal(t, render.EngineGoldmark, cfg.Render.Engine)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.MaxRequests)
	assert.Equal(t, middleware.StrategyClient, cfg.RateLimit.Strategy)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
log:
  level: debug
  format: console
openrouter:
  base_url: http://gateway.local/api/v1/
  referer: https://premio.example
  timeout: 45s
credential:
  backend: redis
redis:
  addr: redis:6379
  key_prefix: "premio-prod:"
storage:
  endpoint: minio:9000
  access_key_id: access
  secret_access_key: secret
  bucket: exports-bucket
  presign_expiry: 1h
render:
  engine: blackfriday
rate_limit:
  enabled: true
  max_requests: 10
  window_seconds: 30
  strategy: ip
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://gateway.local/api/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, "https://premio.example", cfg.OpenRouter.Referer)
	assert.Equal(t, 45*time.Second, cfg.OpenRouter.Timeout)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "premio-prod:", cfg.Redis.KeyPrefix)
	assert.True(t, cfg.Storage.Enabled())
	assert.Equal(t, "exports-bucket", cfg.Storage.Bucket)
	assert.Equal(t, time.Hour, cfg.Storage.PresignExpiry)
	assert.Equal(t, render.EngineBlackfriday, cfg.Render.Engine)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 30, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, middleware.StrategyIP, cfg.RateLimit.Strategy)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PREMIO_SERVER_PORT", "7070")
	t.Setenv("PREMIO_OPENROUTER_REFERER", "https://env.example")
	t.Setenv("PREMIO_STORAGE_SECRET_ACCESS_KEY", "from-env")

	path := writeConfig(t, `
storage:
  endpoint: minio:9000
  access_key_id: access
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "https://env.example", cfg.OpenRouter.Referer)
	assert.Equal(t, "from-env", cfg.Storage.SecretAccessKey)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"blank base url", "openrouter:\n  base_url: '  '\n"},
		{"bad backend", "credential:\n  backend: sqlite\n"},
		{"storage without keys", "storage:\n  endpoint: minio:9000\n"},
		{"bad engine", "render:\n  engine: pandoc\n"},
		{"bad strategy", "rate_limit:\n  enabled: true\n  strategy: user\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
