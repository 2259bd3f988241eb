package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/floegence/bfapi/internal/defaults"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, defaults.RPCEndpoint, cfg.RPC.Endpoint)
	require.Equal(t, defaults.LoginEndpoint, cfg.Session.LoginURL)
	require.Equal(t, defaults.RPCTimeout, cfg.RPC.Timeout)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bfapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
session:
  username: alice
  appkey: from-file
  certificate: /etc/bfapi/client.p12
rpc:
  timeout: 5s
  ratelimit: 20
  burst: 5
log:
  level: debug
`), 0o600))
	t.Setenv("BFAPI_SESSION_APPKEY", "from-env")
	t.Setenv("BFAPI_RPC_ENDPOINT", "https://example.test/json-rpc/v1")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "alice", cfg.Session.Username)
	require.Equal(t, "from-env", cfg.Session.AppKey)
	require.Equal(t, "/etc/bfapi/client.p12", cfg.Session.Certificate)
	require.Equal(t, 5*time.Second, cfg.RPC.Timeout)
	require.Equal(t, 20.0, cfg.RPC.RateLimit)
	require.Equal(t, 5, cfg.RPC.Burst)
	require.Equal(t, "https://example.test/json-rpc/v1", cfg.RPC.Endpoint)
	require.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults.
	require.Equal(t, defaults.KeepAliveEndpoint, cfg.Session.KeepAliveURL)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rpc:\n  ratelimit: -1\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)

	t.Setenv("BFAPI_LOG_LEVEL", "loud")
	_, err = Load("")
	require.Error(t, err)
}
