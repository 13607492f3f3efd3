package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://kitstart.ismit.ru/api", cfg.API.BaseURL)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, "kitstart.db", cfg.Store.Path)
	require.Zero(t, cfg.Store.Latency)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KITSTART_API_BASE_URL", "http://localhost:8080/api")
	t.Setenv("KITSTART_STORE_PATH", "/tmp/demo.db")
	t.Setenv("KITSTART_STORE_LATENCY", "150ms")
	t.Setenv("KITSTART_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	require.Equal(t, "/tmp/demo.db", cfg.Store.Path)
	require.Equal(t, 150*time.Millisecond, cfg.Store.Latency)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "api:\n  base_url: http://file.example/api\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("KITSTART_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://file.example/api", cfg.API.BaseURL)
	require.Equal(t, "warn", cfg.Log.Level)
	// file leaves the rest at defaults
	require.Equal(t, "kitstart.db", cfg.Store.Path)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("KITSTART_API_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
}
