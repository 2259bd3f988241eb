// Package client assembles a ready-to-use SportsAPING client: a session manager for
// certificate login, a JSON-RPC invoker bound to it, and the generated operation bindings.
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/config"
	sportsv1 "github.com/floegence/bfapi/gen/sports/v1"
	"github.com/floegence/bfapi/jsonrpc"
	"github.com/floegence/bfapi/observability"
	"github.com/floegence/bfapi/observability/prom"
	"github.com/floegence/bfapi/session"
)

// Config wires the runtime. Zero values fall back to the library defaults.
type Config struct {
	Credentials session.Credentials

	Endpoint     string
	LoginURL     string
	KeepAliveURL string
	LogoutURL    string
	Proxy        string
	RootCAs      *x509.CertPool

	RPCTimeout       time.Duration
	LoginTimeout     time.Duration
	MaxResponseBytes int64
	// RateLimit is calls per second shared by every operation; 0 disables limiting.
	RateLimit float64
	Burst     int

	// UserAgent is sent on identity and JSON-RPC requests when set.
	UserAgent string

	Logger *zap.Logger
	// Registry receives call and session metrics when set.
	Registry *prometheus.Registry
}

// FromConfig maps loaded settings onto a Config.
func FromConfig(c config.Config) Config {
	return Config{
		Credentials: session.Credentials{
			Username:        c.Session.Username,
			Password:        c.Session.Password,
			AppKey:          c.Session.AppKey,
			CertificatePath: c.Session.Certificate,
			CertFile:        c.Session.CertFile,
			KeyFile:         c.Session.KeyFile,
		},
		Endpoint:         c.RPC.Endpoint,
		LoginURL:         c.Session.LoginURL,
		KeepAliveURL:     c.Session.KeepAliveURL,
		LogoutURL:        c.Session.LogoutURL,
		Proxy:            c.Session.Proxy,
		RPCTimeout:       c.RPC.Timeout,
		LoginTimeout:     c.Session.Timeout,
		MaxResponseBytes: c.RPC.MaxResponseBytes,
		RateLimit:        c.RPC.RateLimit,
		Burst:            c.RPC.Burst,
	}
}

// Client embeds the generated operations, so c.ListMarketCatalogue(ctx, req) works directly.
type Client struct {
	*sportsv1.Client

	Session *session.Manager
	Invoker *jsonrpc.Invoker
}

// New builds an unauthenticated client; call Login before invoking operations.
func New(cfg Config) (*Client, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	rpcObs := observability.NewAtomicRPCObserver()
	sessObs := observability.NewAtomicSessionObserver()
	if cfg.Registry != nil {
		rpcObs.Set(prom.NewRPCObserver(cfg.Registry))
		sessObs.Set(prom.NewSessionObserver(cfg.Registry))
	}

	sessOpts := []session.Option{
		session.WithLogger(log.Named("session")),
		session.WithObserver(sessObs),
		session.WithRootCAs(cfg.RootCAs),
		session.WithProxy(cfg.Proxy),
		session.WithUserAgent(cfg.UserAgent),
	}
	if cfg.LoginURL != "" {
		sessOpts = append(sessOpts, session.WithLoginURL(cfg.LoginURL))
	}
	if cfg.KeepAliveURL != "" {
		sessOpts = append(sessOpts, session.WithKeepAliveURL(cfg.KeepAliveURL))
	}
	if cfg.LogoutURL != "" {
		sessOpts = append(sessOpts, session.WithLogoutURL(cfg.LogoutURL))
	}
	if cfg.LoginTimeout != 0 {
		sessOpts = append(sessOpts, session.WithTimeout(cfg.LoginTimeout))
	}
	mgr, err := session.NewManager(cfg.Credentials, sessOpts...)
	if err != nil {
		return nil, err
	}

	hc, err := rpcHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	rpcOpts := []jsonrpc.Option{
		jsonrpc.WithLogger(log.Named("rpc")),
		jsonrpc.WithObserver(rpcObs),
		jsonrpc.WithHTTPClient(hc),
		jsonrpc.WithUserAgent(cfg.UserAgent),
	}
	if cfg.Endpoint != "" {
		rpcOpts = append(rpcOpts, jsonrpc.WithEndpoint(cfg.Endpoint))
	}
	if cfg.RPCTimeout != 0 {
		rpcOpts = append(rpcOpts, jsonrpc.WithTimeout(cfg.RPCTimeout))
	}
	if cfg.MaxResponseBytes != 0 {
		rpcOpts = append(rpcOpts, jsonrpc.WithMaxResponseBytes(cfg.MaxResponseBytes))
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		rpcOpts = append(rpcOpts, jsonrpc.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)))
	}
	iv, err := jsonrpc.NewInvoker(mgr, rpcOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{Client: sportsv1.NewClient(iv), Session: mgr, Invoker: iv}, nil
}

func rpcHTTPClient(cfg Config) (*http.Client, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = &tls.Config{RootCAs: cfg.RootCAs, MinVersion: tls.VersionTLS12}
	if cfg.Proxy != "" {
		u, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, err
		}
		tr.Proxy = http.ProxyURL(u)
	}
	return &http.Client{Transport: tr}, nil
}

// Login authenticates the session.
func (c *Client) Login(ctx context.Context) error {
	_, err := c.Session.Login(ctx)
	return err
}

// Close logs the session out.
func (c *Client) Close(ctx context.Context) error {
	return c.Session.Logout(ctx)
}

// SessionExpired reports whether err means the session token is missing, invalid or expired,
// the point at which a caller would log in again.
func SessionExpired(err error) bool {
	var ex *sportsv1.APINGException
	if errors.As(err, &ex) && ex.ErrorCode != nil {
		switch *ex.ErrorCode {
		case sportsv1.APINGExceptionErrorCodeInvalidSessionInformation, sportsv1.APINGExceptionErrorCodeNoSession:
			return true
		}
	}
	return errors.Is(err, bferrors.ErrNotAuthenticated) || bferrors.CodeOf(err) == bferrors.CodeKeepAliveRejected
}
