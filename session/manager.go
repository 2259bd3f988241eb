// Package session owns the authentication state of one account: certificate login, the live
// session token, keep-alive and logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/internal/contextutil"
	"github.com/floegence/bfapi/internal/defaults"
	"github.com/floegence/bfapi/observability"
)

const statusSuccess = "SUCCESS"

// maxIdentityBody caps identity service responses, which are tiny JSON objects.
const maxIdentityBody = 64 << 10

type loginResponse struct {
	SessionToken string `json:"sessionToken"`
	LoginStatus  string `json:"loginStatus"`
}

type identityResponse struct {
	Token   string `json:"token"`
	Product string `json:"product"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

// State is a snapshot of the session.
type State struct {
	Authenticated bool
	LastRefresh   time.Time
}

// Manager holds the session token. Readers never block each other; Login, KeepAlive and
// Logout are serialised so two logins cannot race to overwrite the token.
type Manager struct {
	creds Credentials
	opts  options
	plain *http.Client

	writeMu sync.Mutex

	mu          sync.RWMutex
	token       string
	lastRefresh time.Time
}

// NewManager returns an unauthenticated Manager.
func NewManager(creds Credentials, opts ...Option) (*Manager, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Manager{creds: creds, opts: cfg, plain: cfg.httpClient()}, nil
}

// AppKey returns the application key sent with every request.
func (m *Manager) AppKey() string { return m.creds.AppKey }

// CurrentToken returns the live token or bferrors.ErrNotAuthenticated.
func (m *Manager) CurrentToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", bferrors.ErrNotAuthenticated
	}
	return m.token, nil
}

// LastRefresh reports when the token was last issued or kept alive.
func (m *Manager) LastRefresh() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastRefresh
}

// State returns a consistent snapshot of the authentication state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return State{Authenticated: m.token != "", LastRefresh: m.lastRefresh}
}

// NeedsKeepAlive reports whether half of the session lifetime has passed since the last
// refresh. It is always false without a token.
func (m *Manager) NeedsKeepAlive() bool {
	st := m.State()
	if !st.Authenticated {
		return false
	}
	return m.opts.now().Sub(st.LastRefresh) >= defaults.KeepAliveInterval(m.opts.lifetime)
}

func (m *Manager) store(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.lastRefresh = m.opts.now()
}

// Login authenticates with the client certificate and stores the issued token. On any
// failure the previously held token, if any, is left in place.
func (m *Manager) Login(ctx context.Context) (string, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	start := time.Now()
	token, err := m.login(ctx)
	m.opts.observer.Login(sessionResult(err), time.Since(start))
	if err != nil {
		m.opts.logger.Warn("login failed", zap.String("username", m.creds.Username), zap.Error(err))
		return "", err
	}
	m.store(token)
	m.opts.logger.Info("login succeeded", zap.String("username", m.creds.Username))
	return token, nil
}

func (m *Manager) login(ctx context.Context) (string, error) {
	if err := m.creds.validate(); err != nil {
		return "", err
	}
	cert, err := m.creds.certificate()
	if err != nil {
		return "", err
	}

	ctx, cancel := contextutil.WithTimeout(ctx, m.opts.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("username", m.creds.Username)
	form.Set("password", m.creds.Password)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.opts.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", loginErr(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Application", m.creds.AppKey)
	m.setUserAgent(req)

	hc := m.opts.httpClient(cert)
	defer hc.CloseIdleConnections()

	var out loginResponse
	if err := doJSON(hc, req, &out); err != nil {
		return "", loginErr(err)
	}
	if out.LoginStatus != statusSuccess || out.SessionToken == "" {
		return "", bferrors.New(bferrors.KindAuth, bferrors.StageLogin, bferrors.CodeLoginRejected, m.creds.Username,
			"loginStatus %s", out.LoginStatus)
	}
	return out.SessionToken, nil
}

// KeepAlive extends the held session. A rejection leaves the token in place; the caller
// decides whether to log in again.
func (m *Manager) KeepAlive(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	token, err := m.CurrentToken()
	if err != nil {
		return err
	}
	out, err := m.identity(ctx, m.opts.keepAliveURL, bferrors.StageKeepAlive, token)
	if err == nil && out.Status != statusSuccess {
		err = bferrors.New(bferrors.KindAuth, bferrors.StageKeepAlive, bferrors.CodeKeepAliveRejected, "",
			"status %s error %s", out.Status, out.Error)
	}
	m.opts.observer.KeepAlive(sessionResult(err))
	if err != nil {
		m.opts.logger.Info("keep-alive failed", zap.Error(err))
		return err
	}
	if out.Token != "" {
		token = out.Token
	}
	m.store(token)
	m.opts.logger.Debug("keep-alive succeeded")
	return nil
}

// Logout forgets the token, then tells the identity service. The token is gone locally even
// when the remote call fails.
func (m *Manager) Logout(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	token := m.token
	m.token = ""
	m.lastRefresh = time.Time{}
	m.mu.Unlock()

	if token == "" {
		return nil
	}
	out, err := m.identity(ctx, m.opts.logoutURL, bferrors.StageLogout, token)
	if err == nil && out.Status != statusSuccess {
		err = bferrors.New(bferrors.KindAuth, bferrors.StageLogout, bferrors.CodeLogoutFailed, "",
			"status %s error %s", out.Status, out.Error)
	}
	if err != nil {
		m.opts.logger.Info("logout failed", zap.Error(err))
		return err
	}
	m.opts.logger.Info("logged out")
	return nil
}

func (m *Manager) identity(ctx context.Context, endpoint string, stage bferrors.Stage, token string) (identityResponse, error) {
	ctx, cancel := contextutil.WithTimeout(ctx, m.opts.timeout)
	defer cancel()

	var out identityResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return out, bferrors.Transport(stage, "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Application", m.creds.AppKey)
	req.Header.Set("X-Authentication", token)
	m.setUserAgent(req)
	if err := doJSON(m.plain, req, &out); err != nil {
		return out, bferrors.Transport(stage, "", err)
	}
	return out, nil
}

func (m *Manager) setUserAgent(req *http.Request) {
	if m.opts.userAgent != "" {
		req.Header.Set("User-Agent", m.opts.userAgent)
	}
}

var errStatus = errors.New("unexpected http status")

func doJSON(hc *http.Client, req *http.Request, out any) error {
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxIdentityBody))
		return fmt.Errorf("%w %d", errStatus, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIdentityBody))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode identity response: %w", err)
	}
	return nil
}

func loginErr(err error) error {
	var be *bferrors.Error
	if errors.As(err, &be) {
		return err
	}
	return &bferrors.Error{Kind: bferrors.KindAuth, Stage: bferrors.StageLogin, Code: bferrors.ClassifyLoginCode(err), Err: err}
}

func sessionResult(err error) observability.SessionResult {
	switch bferrors.CodeOf(err) {
	case "":
		if err != nil {
			return observability.SessionResultFailed
		}
		return observability.SessionResultOK
	case bferrors.CodeLoginRejected, bferrors.CodeKeepAliveRejected:
		return observability.SessionResultRejected
	case bferrors.CodeCertificate:
		return observability.SessionResultCertificate
	case bferrors.CodeCanceled:
		return observability.SessionResultCanceled
	default:
		return observability.SessionResultFailed
	}
}
