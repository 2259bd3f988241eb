// Package config loads runtime settings from an optional YAML file and BFAPI_* environment
// variables, in that order of precedence, on top of built-in defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/floegence/bfapi/internal/defaults"
	"github.com/floegence/bfapi/logging"
)

// EnvPrefix prefixes every environment variable, e.g. BFAPI_SESSION_APPKEY=... sets
// session.appkey.
const EnvPrefix = "BFAPI_"

// Session holds the credentials and identity endpoints used to log in.
type Session struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	AppKey   string `koanf:"appkey"`
	// Certificate is a PKCS#12 file with an empty or absent password.
	Certificate string `koanf:"certificate"`
	// CertFile and KeyFile are a PEM pair, used when Certificate is empty.
	CertFile string `koanf:"certfile"`
	KeyFile  string `koanf:"keyfile"`

	LoginURL     string        `koanf:"loginurl"`
	KeepAliveURL string        `koanf:"keepaliveurl"`
	LogoutURL    string        `koanf:"logouturl"`
	Proxy        string        `koanf:"proxy"`
	Timeout      time.Duration `koanf:"timeout"`
}

// RPC configures the JSON-RPC endpoint and its client-side limits.
type RPC struct {
	Endpoint         string        `koanf:"endpoint"`
	Timeout          time.Duration `koanf:"timeout"`
	MaxResponseBytes int64         `koanf:"maxresponsebytes"`
	// RateLimit is calls per second; 0 disables limiting.
	RateLimit float64 `koanf:"ratelimit"`
	Burst     int     `koanf:"burst"`
}

// Config is the full settings tree read by Load.
type Config struct {
	Session Session        `koanf:"session"`
	RPC     RPC            `koanf:"rpc"`
	Log     logging.Config `koanf:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Session: Session{
			LoginURL:     defaults.LoginEndpoint,
			KeepAliveURL: defaults.KeepAliveEndpoint,
			LogoutURL:    defaults.LogoutEndpoint,
			Timeout:      defaults.LoginTimeout,
		},
		RPC: RPC{
			Endpoint:         defaults.RPCEndpoint,
			Timeout:          defaults.RPCTimeout,
			MaxResponseBytes: defaults.MaxResponseBytes,
			Burst:            1,
		},
		Log: logging.Config{Level: "info", Format: logging.FormatJSON},
	}
}

// Load merges path (skipped when empty) and the environment over Default.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	// BFAPI_SESSION_APPKEY -> session.appkey
	transform := func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(s, "_", ".", 1)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no component could run with.
func (c Config) Validate() error {
	if c.RPC.Timeout < 0 || c.Session.Timeout < 0 {
		return fmt.Errorf("timeouts must be >= 0")
	}
	if c.RPC.RateLimit < 0 {
		return fmt.Errorf("rpc.ratelimit must be >= 0")
	}
	if c.RPC.RateLimit > 0 && c.RPC.Burst <= 0 {
		return fmt.Errorf("rpc.burst must be > 0 when rate limiting")
	}
	if c.RPC.MaxResponseBytes <= 0 {
		return fmt.Errorf("rpc.maxresponsebytes must be > 0")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
