package session

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/floegence/bfapi/internal/defaults"
	"github.com/floegence/bfapi/observability"
)

// Option configures a Manager.
//
// Omit an option to use the library default. For timeouts, a value of 0 disables the timeout.
type Option func(*options) error

type options struct {
	loginURL     string
	keepAliveURL string
	logoutURL    string

	rootCAs  *x509.CertPool
	proxy    *url.URL
	timeout  time.Duration
	lifetime time.Duration

	logger    *zap.Logger
	observer  observability.SessionObserver
	now       func() time.Time
	userAgent string
}

func defaultOptions() options {
	return options{
		loginURL:     defaults.LoginEndpoint,
		keepAliveURL: defaults.KeepAliveEndpoint,
		logoutURL:    defaults.LogoutEndpoint,
		timeout:      defaults.LoginTimeout,
		lifetime:     defaults.SessionLifetime,
		logger:       zap.NewNop(),
		observer:     observability.NoopSessionObserver,
		now:          time.Now,
	}
}

func nonEmptyURL(name string, u string, dst *string) error {
	if u == "" {
		return fmt.Errorf("%s url must not be empty", name)
	}
	*dst = u
	return nil
}

// WithLoginURL overrides the certificate login endpoint.
func WithLoginURL(u string) Option {
	return func(o *options) error { return nonEmptyURL("login", u, &o.loginURL) }
}

// WithKeepAliveURL overrides the keep-alive endpoint.
func WithKeepAliveURL(u string) Option {
	return func(o *options) error { return nonEmptyURL("keep-alive", u, &o.keepAliveURL) }
}

// WithLogoutURL overrides the logout endpoint.
func WithLogoutURL(u string) Option {
	return func(o *options) error { return nonEmptyURL("logout", u, &o.logoutURL) }
}

// WithRootCAs sets the pool used to verify the identity service; nil uses the system pool.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(o *options) error {
		o.rootCAs = pool
		return nil
	}
}

// WithProxy routes identity requests through an HTTP(S) proxy.
func WithProxy(raw string) Option {
	return func(o *options) error {
		if raw == "" {
			o.proxy = nil
			return nil
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid proxy url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return errors.New("proxy url needs a scheme and host")
		}
		o.proxy = u
		return nil
	}
}

// WithTimeout bounds each identity request; 0 disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return fmt.Errorf("timeout must be >= 0")
		}
		o.timeout = d
		return nil
	}
}

// WithSessionLifetime sets the idle lifetime used by NeedsKeepAlive.
func WithSessionLifetime(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return fmt.Errorf("session lifetime must be > 0")
		}
		o.lifetime = d
		return nil
	}
}

// WithLogger sets the logger; tokens and passwords are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) error {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
		return nil
	}
}

// WithObserver sets the metrics observer.
func WithObserver(obs observability.SessionObserver) Option {
	return func(o *options) error {
		if obs == nil {
			obs = observability.NoopSessionObserver
		}
		o.observer = obs
		return nil
	}
}

// WithUserAgent sets the User-Agent header of identity requests.
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		o.userAgent = ua
		return nil
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		if now == nil {
			return errors.New("clock must not be nil")
		}
		o.now = now
		return nil
	}
}

func (o *options) httpClient(certs ...tls.Certificate) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = &tls.Config{
		Certificates: certs,
		RootCAs:      o.rootCAs,
		MinVersion:   tls.VersionTLS12,
	}
	if o.proxy != nil {
		tr.Proxy = http.ProxyURL(o.proxy)
	}
	return &http.Client{Transport: tr}
}
