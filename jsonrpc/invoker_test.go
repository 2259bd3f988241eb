package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/observability"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) CurrentToken() (string, error) { return s.token, s.err }
func (s staticTokens) AppKey() string                 { return "app-key" }

type testException struct {
	ErrorCode    string  `json:"errorCode,omitzero"`
	ErrorDetails *string `json:"errorDetails,omitzero"`
}

func (e *testException) Error() string       { return FormatException(e) }
func (*testException) ExceptionName() string { return "APINGException" }

var declared = []ExceptionType{Declare[testException]()}

type recordingObserver struct {
	mu      sync.Mutex
	results []observability.RPCResult
}

func (r *recordingObserver) ClientCall(_ string, result observability.RPCResult, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

// rpcServer decodes each request and answers with reply(req).
func rpcServer(t *testing.T, reply func(req Request, r *http.Request) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply(req, r)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newInvoker(t *testing.T, url string, opts ...Option) *Invoker {
	t.Helper()
	iv, err := NewInvoker(staticTokens{token: "tok"}, append([]Option{WithEndpoint(url)}, opts...)...)
	require.NoError(t, err)
	return iv
}

func TestInvokeSendsEnvelopeAndHeaders(t *testing.T) {
	var ids []uint64
	var mu sync.Mutex
	srv := rpcServer(t, func(req Request, r *http.Request) string {
		mu.Lock()
		ids = append(ids, req.ID)
		mu.Unlock()
		if r.Header.Get(HeaderApplication) != "app-key" || r.Header.Get(HeaderAuthentication) != "tok" || r.UserAgent() != "bfapi/test" {
			return `{"jsonrpc":"2.0","error":{"code":-1,"message":"bad headers"},"id":` + fmt.Sprint(req.ID) + `}`
		}
		if req.JSONRPC != "2.0" || req.Method != "SportsAPING/v1.0/listEventTypes" {
			return `{}`
		}
		return fmt.Sprintf(`{"jsonrpc":"2.0","result":[{"marketCount":3}],"id":%d}`, req.ID)
	})
	iv := newInvoker(t, srv.URL, WithUserAgent("bfapi/test"))

	for i := 0; i < 2; i++ {
		raw, err := iv.Invoke(context.Background(), "SportsAPING/v1.0/listEventTypes", map[string]any{"filter": map[string]any{}}, declared)
		require.NoError(t, err)
		require.JSONEq(t, `[{"marketCount":3}]`, string(raw))
	}
	require.Equal(t, []uint64{1, 2}, ids)
}

func TestInvokeConcurrentIDsAreUnique(t *testing.T) {
	srv := rpcServer(t, func(req Request, _ *http.Request) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","result":%d,"id":%d}`, req.ID, req.ID)
	})
	iv := newInvoker(t, srv.URL)

	const n = 32
	var wg sync.WaitGroup
	results := make(chan uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Call[uint64](context.Background(), iv, "m", struct{}{}, nil)
			if err != nil {
				t.Errorf("call: %v", err)
				return
			}
			results <- got
		}()
	}
	wg.Wait()
	close(results)
	seen := map[uint64]bool{}
	for id := range results {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
}

func TestInvokeDeclaredException(t *testing.T) {
	srv := rpcServer(t, func(req Request, _ *http.Request) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","error":{"code":-32099,"message":"ANGX-0003","data":{"APINGException":{"errorCode":"INVALID_SESSION_INFORMATION","errorDetails":"expired"},"exceptionname":"APINGException"}},"id":%d}`, req.ID)
	})
	obs := &recordingObserver{}
	iv := newInvoker(t, srv.URL, WithObserver(obs))

	_, err := iv.Invoke(context.Background(), "m", struct{}{}, declared)
	require.Error(t, err)
	var ex *testException
	require.True(t, errors.As(err, &ex), "got %T", err)
	require.Equal(t, "INVALID_SESSION_INFORMATION", ex.ErrorCode)
	require.NotNil(t, ex.ErrorDetails)
	require.Equal(t, "expired", *ex.ErrorDetails)
	require.True(t, bferrors.IsException(err))
	require.Contains(t, err.Error(), "APINGException")
	require.Equal(t, []observability.RPCResult{observability.RPCResultException}, obs.results)
}

func TestInvokeProtocolErrors(t *testing.T) {
	cases := []struct {
		name     string
		reply    func(req Request) string
		declared []ExceptionType
		code     bferrors.Code
	}{
		{
			name: "undeclared_exception",
			reply: func(req Request) string {
				return fmt.Sprintf(`{"jsonrpc":"2.0","error":{"code":-32099,"message":"x","data":{"AccountAPINGException":{},"exceptionname":"AccountAPINGException"}},"id":%d}`, req.ID)
			},
			declared: declared,
			code:     bferrors.CodeUndeclaredError,
		},
		{
			name: "no_declared_exceptions",
			reply: func(req Request) string {
				return fmt.Sprintf(`{"jsonrpc":"2.0","error":{"code":-32099,"message":"x","data":{"APINGException":{},"exceptionname":"APINGException"}},"id":%d}`, req.ID)
			},
			code: bferrors.CodeUndeclaredError,
		},
		{
			name: "plain_rpc_error",
			reply: func(req Request) string {
				return fmt.Sprintf(`{"jsonrpc":"2.0","error":{"code":-32601,"message":"Method not found"},"id":%d}`, req.ID)
			},
			declared: declared,
			code:     bferrors.CodeUndeclaredError,
		},
		{
			name: "id_mismatch",
			reply: func(req Request) string {
				return fmt.Sprintf(`{"jsonrpc":"2.0","result":{},"id":%d}`, req.ID+100)
			},
			code: bferrors.CodeIDMismatch,
		},
		{
			name: "missing_id",
			reply: func(Request) string {
				return `{"jsonrpc":"2.0","result":{}}`
			},
			code: bferrors.CodeIDMismatch,
		},
		{
			name: "missing_result",
			reply: func(req Request) string {
				return fmt.Sprintf(`{"jsonrpc":"2.0","id":%d}`, req.ID)
			},
			code: bferrors.CodeMalformedResponse,
		},
		{
			name: "not_json",
			reply: func(Request) string {
				return `<html>`
			},
			code: bferrors.CodeMalformedResponse,
		},
		{
			name: "bad_exception_payload",
			reply: func(req Request) string {
				return fmt.Sprintf(`{"jsonrpc":"2.0","error":{"code":-32099,"message":"x","data":{"APINGException":{"errorCode":7},"exceptionname":"APINGException"}},"id":%d}`, req.ID)
			},
			declared: declared,
			code:     bferrors.CodeMalformedResponse,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := rpcServer(t, func(req Request, _ *http.Request) string { return tc.reply(req) })
			iv := newInvoker(t, srv.URL)
			_, err := iv.Invoke(context.Background(), "m", struct{}{}, tc.declared)
			require.Error(t, err)
			require.True(t, bferrors.IsProtocol(err), "err=%v", err)
			require.Equal(t, tc.code, bferrors.CodeOf(err))
		})
	}
}

func TestInvokeRequiresSession(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	iv, err := NewInvoker(staticTokens{err: bferrors.ErrNotAuthenticated}, WithEndpoint(srv.URL))
	require.NoError(t, err)
	_, err = iv.Invoke(context.Background(), "m", struct{}{}, nil)
	require.True(t, bferrors.IsAuth(err))
	require.ErrorIs(t, err, bferrors.ErrNotAuthenticated)
	require.Zero(t, hits.Load())
}

func TestInvokeTransportErrors(t *testing.T) {
	t.Run("http_status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer srv.Close()
		iv := newInvoker(t, srv.URL)
		_, err := iv.Invoke(context.Background(), "m", struct{}{}, nil)
		require.True(t, bferrors.IsTransport(err), "err=%v", err)
		require.Equal(t, bferrors.CodeHTTPStatus, bferrors.CodeOf(err))
	})

	t.Run("canceled", func(t *testing.T) {
		srv := rpcServer(t, func(req Request, _ *http.Request) string { return `{}` })
		iv := newInvoker(t, srv.URL)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := iv.Invoke(ctx, "m", struct{}{}, nil)
		require.True(t, bferrors.IsTransport(err))
		require.Equal(t, bferrors.CodeCanceled, bferrors.CodeOf(err))
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)
		iv := newInvoker(t, srv.URL, WithTimeout(50*time.Millisecond))
		_, err := iv.Invoke(context.Background(), "m", struct{}{}, nil)
		require.Equal(t, bferrors.CodeTimeout, bferrors.CodeOf(err))
		require.True(t, bferrors.Retryable(err))
	})

	t.Run("rate_limited", func(t *testing.T) {
		srv := rpcServer(t, func(req Request, _ *http.Request) string {
			return fmt.Sprintf(`{"jsonrpc":"2.0","result":1,"id":%d}`, req.ID)
		})
		l := rate.NewLimiter(rate.Every(time.Hour), 1)
		iv := newInvoker(t, srv.URL, WithRateLimit(l), WithTimeout(50*time.Millisecond))
		_, err := iv.Invoke(context.Background(), "m", struct{}{}, nil)
		require.NoError(t, err)
		_, err = iv.Invoke(context.Background(), "m", struct{}{}, nil)
		require.True(t, bferrors.IsTransport(err))
		require.Equal(t, bferrors.CodeRateLimited, bferrors.CodeOf(err))
	})
}

func TestInvokeResponseTooLarge(t *testing.T) {
	srv := rpcServer(t, func(req Request, _ *http.Request) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","result":"%s","id":%d}`, strings.Repeat("x", 256), req.ID)
	})
	iv := newInvoker(t, srv.URL, WithMaxResponseBytes(64))
	_, err := iv.Invoke(context.Background(), "m", struct{}{}, nil)
	require.Equal(t, bferrors.CodeResponseTooLarge, bferrors.CodeOf(err))
}

func TestCallDecodesResult(t *testing.T) {
	type eventType struct {
		ID   *string `json:"id,omitzero"`
		Name *string `json:"name,omitzero"`
	}
	srv := rpcServer(t, func(req Request, _ *http.Request) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","result":[{"id":"1","name":"Soccer"}],"id":%d}`, req.ID)
	})
	iv := newInvoker(t, srv.URL)
	got, err := Call[[]eventType](context.Background(), iv, "m", struct{}{}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Soccer", *got[0].Name)

	_, err = Call[[]int](context.Background(), iv, "m", struct{}{}, nil)
	require.True(t, bferrors.IsProtocol(err))
	require.Equal(t, bferrors.CodeMalformedResponse, bferrors.CodeOf(err))
}

func TestNewInvokerValidatesOptions(t *testing.T) {
	_, err := NewInvoker(nil)
	require.Error(t, err)
	_, err = NewInvoker(staticTokens{}, WithTimeout(-time.Second))
	require.Error(t, err)
	_, err = NewInvoker(staticTokens{}, WithMaxResponseBytes(0))
	require.Error(t, err)
	_, err = NewInvoker(staticTokens{}, WithEndpoint(""))
	require.Error(t, err)
}
