// Package jsonrpc sends typed JSON-RPC 2.0 calls to the betting endpoint on behalf of an
// authenticated session.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/internal/contextutil"
	"github.com/floegence/bfapi/internal/defaults"
	"github.com/floegence/bfapi/observability"
)

const (
	HeaderApplication    = "X-Application"
	HeaderAuthentication = "X-Authentication"
)

// TokenSource supplies the credentials attached to every call. The invoker only reads from it.
type TokenSource interface {
	CurrentToken() (string, error)
	AppKey() string
}

// Option configures an Invoker.
//
// Omit an option to use the library default. For timeouts, a value of 0 disables the timeout.
type Option func(*options) error

type options struct {
	endpoint         string
	httpClient       *http.Client
	timeout          time.Duration
	limiter          *rate.Limiter
	logger           *zap.Logger
	observer         observability.RPCObserver
	maxResponseBytes int64
	userAgent        string
}

func defaultOptions() options {
	return options{
		endpoint:         defaults.RPCEndpoint,
		httpClient:       http.DefaultClient,
		timeout:          defaults.RPCTimeout,
		logger:           zap.NewNop(),
		observer:         observability.NoopRPCObserver,
		maxResponseBytes: defaults.MaxResponseBytes,
	}
}

// WithEndpoint overrides the JSON-RPC URL.
func WithEndpoint(url string) Option {
	return func(o *options) error {
		if url == "" {
			return errors.New("endpoint must not be empty")
		}
		o.endpoint = url
		return nil
	}
}

// WithHTTPClient sets the client used for every exchange (proxy/TLS/etc).
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) error {
		if c == nil {
			return errors.New("http client must not be nil")
		}
		o.httpClient = c
		return nil
	}
}

// WithTimeout bounds each call; 0 disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return fmt.Errorf("timeout must be >= 0")
		}
		o.timeout = d
		return nil
	}
}

// WithRateLimit makes every call wait for a token from l before it is sent.
func WithRateLimit(l *rate.Limiter) Option {
	return func(o *options) error {
		o.limiter = l
		return nil
	}
}

// WithLogger sets the logger; session tokens are never logged.
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
func WithObserver(obs observability.RPCObserver) Option {
	return func(o *options) error {
		if obs == nil {
			obs = observability.NoopRPCObserver
		}
		o.observer = obs
		return nil
	}
}

// WithUserAgent sets the User-Agent header; empty leaves net/http's default.
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		o.userAgent = ua
		return nil
	}
}

// WithMaxResponseBytes caps the response body size.
func WithMaxResponseBytes(n int64) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("max response bytes must be > 0")
		}
		o.maxResponseBytes = n
		return nil
	}
}

// Invoker performs JSON-RPC exchanges. It is safe for concurrent use; every call is one
// independent HTTP exchange and never retries.
type Invoker struct {
	tokens TokenSource
	opts   options
	nextID atomic.Uint64
}

var _ Caller = (*Invoker)(nil)

// NewInvoker returns an Invoker that authenticates with tokens.
func NewInvoker(tokens TokenSource, opts ...Option) (*Invoker, error) {
	if tokens == nil {
		return nil, errors.New("token source must not be nil")
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Invoker{tokens: tokens, opts: cfg}, nil
}

// Invoke sends method with params and returns the raw result. A declared exception is returned
// as its generated type; anything else is a *bferrors.Error.
func (iv *Invoker) Invoke(ctx context.Context, method string, params any, exceptions []ExceptionType) (json.RawMessage, error) {
	start := time.Now()
	id, raw, err := iv.invoke(ctx, method, params, exceptions)
	d := time.Since(start)
	iv.opts.observer.ClientCall(method, resultOf(err), d)
	if err != nil {
		iv.opts.logger.Debug("rpc call failed",
			zap.String("method", method),
			zap.Uint64("id", id),
			zap.Duration("duration", d),
			zap.Error(err),
		)
		return nil, err
	}
	iv.opts.logger.Debug("rpc call",
		zap.String("method", method),
		zap.Uint64("id", id),
		zap.Duration("duration", d),
		zap.Int("result_bytes", len(raw)),
	)
	return raw, nil
}

func (iv *Invoker) invoke(ctx context.Context, method string, params any, exceptions []ExceptionType) (uint64, json.RawMessage, error) {
	token, err := iv.tokens.CurrentToken()
	if err != nil {
		return 0, nil, err
	}

	ctx, cancel := contextutil.WithTimeout(ctx, iv.opts.timeout)
	defer cancel()

	if l := iv.opts.limiter; l != nil {
		if err := l.Wait(ctx); err != nil {
			if cerr := contextutil.Err(ctx); cerr != nil {
				return 0, nil, bferrors.Transport(bferrors.StageSend, method, cerr)
			}
			return 0, nil, &bferrors.Error{Kind: bferrors.KindTransport, Stage: bferrors.StageSend, Code: bferrors.CodeRateLimited, Subject: method, Err: err}
		}
	}

	id := iv.nextID.Add(1)
	body, err := json.Marshal(Request{JSONRPC: Version, Method: method, Params: params, ID: id})
	if err != nil {
		return id, nil, &bferrors.Error{Kind: bferrors.KindProtocol, Stage: bferrors.StageEncode, Code: bferrors.CodeEncodeFailed, Subject: method, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, iv.opts.endpoint, bytes.NewReader(body))
	if err != nil {
		return id, nil, bferrors.Transport(bferrors.StageSend, method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderApplication, iv.tokens.AppKey())
	req.Header.Set(HeaderAuthentication, token)
	if iv.opts.userAgent != "" {
		req.Header.Set("User-Agent", iv.opts.userAgent)
	}

	resp, err := iv.opts.httpClient.Do(req)
	if err != nil {
		return id, nil, bferrors.Transport(bferrors.StageSend, method, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, iv.opts.maxResponseBytes+1))
	if err != nil {
		return id, nil, bferrors.Transport(bferrors.StageDecode, method, err)
	}
	if int64(len(payload)) > iv.opts.maxResponseBytes {
		return id, nil, bferrors.New(bferrors.KindProtocol, bferrors.StageDecode, bferrors.CodeResponseTooLarge, method,
			"response exceeds %d bytes", iv.opts.maxResponseBytes)
	}

	raw, err := decodeResponse(method, id, resp.StatusCode, payload, exceptions)
	return id, raw, err
}

func decodeResponse(method string, id uint64, status int, payload []byte, exceptions []ExceptionType) (json.RawMessage, error) {
	var env Response
	if err := json.Unmarshal(payload, &env); err != nil || env.empty() {
		if status < 200 || status > 299 {
			return nil, bferrors.New(bferrors.KindTransport, bferrors.StageDecode, bferrors.CodeHTTPStatus, method,
				"unexpected status %d", status)
		}
		if err == nil {
			err = errors.New("empty envelope")
		}
		return nil, &bferrors.Error{Kind: bferrors.KindProtocol, Stage: bferrors.StageDecode, Code: bferrors.CodeMalformedResponse, Subject: method, Err: err}
	}
	if env.ID == nil || *env.ID != id {
		got := "none"
		if env.ID != nil {
			got = fmt.Sprint(*env.ID)
		}
		return nil, bferrors.New(bferrors.KindProtocol, bferrors.StageDecode, bferrors.CodeIDMismatch, method,
			"sent id %d, got %s", id, got)
	}
	if env.Error != nil {
		ex, err := match(env.Error.Data, exceptions)
		if err != nil {
			return nil, &bferrors.Error{Kind: bferrors.KindProtocol, Stage: bferrors.StageDecode, Code: bferrors.CodeMalformedResponse, Subject: method, Err: err}
		}
		if ex != nil {
			return nil, ex
		}
		return nil, &bferrors.Error{Kind: bferrors.KindProtocol, Stage: bferrors.StageDecode, Code: bferrors.CodeUndeclaredError, Subject: method, Err: env.Error}
	}
	if len(env.Result) == 0 {
		return nil, bferrors.New(bferrors.KindProtocol, bferrors.StageDecode, bferrors.CodeMalformedResponse, method,
			"response has neither result nor error")
	}
	return env.Result, nil
}

func resultOf(err error) observability.RPCResult {
	switch {
	case err == nil:
		return observability.RPCResultOK
	case bferrors.IsException(err):
		return observability.RPCResultException
	case bferrors.IsProtocol(err):
		return observability.RPCResultProtocolError
	case bferrors.IsAuth(err):
		return observability.RPCResultAuthError
	case bferrors.CodeOf(err) == bferrors.CodeCanceled:
		return observability.RPCResultCanceled
	default:
		return observability.RPCResultTransportError
	}
}
