package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromBytesDefaults(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte("server:\n  http-port: :9000\n"))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Server.HttpPort)
	require.Equal(t, "release", cfg.Server.RunMode)
	require.Equal(t, "sqlite", cfg.Database.Type)
	require.Equal(t, 3, cfg.Share.KeepVersions)
	require.Equal(t, "USD", cfg.Share.DefaultCurrency)
	require.True(t, cfg.User.RegisterIsEnable)
	require.True(t, cfg.Tracer.Enabled)
	require.Equal(t, "X-Trace-ID", cfg.Tracer.Header)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	content := `
server:
  run-mode: debug
  http-port: :8080
share:
  keep-versions: 5
  version-expiry: 30d
  rollback-window: 7d
  prune-interval: 1h
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Server.RunMode)
	require.Equal(t, ":8080", cfg.Server.HttpPort)
	require.Equal(t, 5, cfg.Share.KeepVersions)
	require.Equal(t, 30*24*time.Hour, cfg.GetVersionExpiry())
	require.Equal(t, 7*24*time.Hour, cfg.GetRollbackWindow())
	require.Equal(t, time.Hour, cfg.GetPruneInterval())
	require.NotEmpty(t, cfg.File)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestDurationGetterFallbacks(t *testing.T) {
	cfg := &AppConfig{}
	cfg.Security.TokenExpiry = "bogus"
	cfg.Share.VersionExpiry = ""
	cfg.Share.RollbackWindow = "??"
	cfg.Share.PruneInterval = "soon"

	require.Equal(t, 365*24*time.Hour, cfg.GetTokenExpiry())
	require.Equal(t, 90*24*time.Hour, cfg.GetVersionExpiry())
	require.Equal(t, 30*24*time.Hour, cfg.GetRollbackWindow())
	require.Equal(t, 24*time.Hour, cfg.GetPruneInterval())
}
