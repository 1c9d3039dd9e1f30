package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.example.test")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, TokenBackendStatic, cfg.Auth.TokenBackend)
	assert.Equal(t, "dispatch-store", cfg.Auth.KeyringService)
	assert.True(t, cfg.Store.GuardStaleStatus)
	assert.False(t, cfg.Proxy.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKEND_URL", "https://api.example.test")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
	t.Setenv("AUTH_TOKEN", "tok_123")
	t.Setenv("TOKEN_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_HOSTNAME", "proxy.local")
	t.Setenv("PROXY_PORT", "3128")
	t.Setenv("STORE_GUARD_STALE_STATUS", "false")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://api.example.test", cfg.Backend.URL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, "tok_123", cfg.Auth.Token)
	assert.Equal(t, TokenBackendRedis, cfg.Auth.TokenBackend)
	assert.Equal(t, "redis://cache:6379/2", cfg.Auth.RedisURL)
	assert.True(t, cfg.Proxy.Enabled)
	assert.Equal(t, "proxy.local", cfg.Proxy.Hostname)
	assert.Equal(t, 3128, cfg.Proxy.Port)
	assert.False(t, cfg.Store.GuardStaleStatus)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
BACKEND_URL=https://staging.example.test
TOKEN_BACKEND=keyring
KEYRING_USER=dispatcher
`)
	require.NoError(t, os.WriteFile(dir+"/.env", content, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.example.test", cfg.Backend.URL)
	assert.Equal(t, TokenBackendKeyring, cfg.Auth.TokenBackend)
	assert.Equal(t, "dispatcher", cfg.Auth.KeyringUser)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	t.Setenv("BACKEND_URL", "")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: BACKEND_URL")
}

// TestLoad_UnknownTokenBackend verifies that an unsupported token backend is rejected.
func TestLoad_UnknownTokenBackend(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.example.test")
	t.Setenv("TOKEN_BACKEND", "vault")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unsupported TOKEN_BACKEND")
}
