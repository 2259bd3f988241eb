package client

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/config"
	sportsv1 "github.com/floegence/bfapi/gen/sports/v1"
	"github.com/floegence/bfapi/observability/prom"
	"github.com/floegence/bfapi/session"
)

func selfSigned(t *testing.T) *tls.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(7),
		Subject:      pkix.Name{CommonName: "bot"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return &tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

// exchange serves certlogin, keepAlive, logout and the JSON-RPC endpoint from one TLS server.
func exchange(t *testing.T) (*httptest.Server, *x509.CertPool) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/certlogin", func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
			http.Error(w, "no cert", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"sessionToken": "sess-1", "loginStatus": "SUCCESS"})
	})
	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "SUCCESS"})
	})
	mux.HandleFunc("/json-rpc/v1", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
			ID     uint64          `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.Header.Get("X-Authentication") != "sess-1" || r.Header.Get("X-Application") != "app" {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","error":{"code":-32099,"message":"ANGX-0003","data":{"APINGException":{"errorCode":"INVALID_SESSION_INFORMATION"},"exceptionname":"APINGException"}},"id":%d}`, req.ID)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","result":[{"marketType":"MATCH_ODDS","marketCount":3}],"id":%d}`, req.ID)
	})
	srv := httptest.NewUnstartedServer(mux)
	srv.TLS = &tls.Config{ClientAuth: tls.RequestClientCert}
	srv.StartTLS()
	t.Cleanup(srv.Close)
	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())
	return srv, pool
}

func TestClientLoginAndCall(t *testing.T) {
	srv, pool := exchange(t)
	reg := prom.NewRegistry()
	c, err := New(Config{
		Credentials:  session.Credentials{Username: "u", Password: "p", AppKey: "app", Certificate: selfSigned(t)},
		Endpoint:     srv.URL + "/json-rpc/v1",
		LoginURL:     srv.URL + "/api/certlogin",
		LogoutURL:    srv.URL + "/api/logout",
		RootCAs:      pool,
		RPCTimeout:   5 * time.Second,
		LoginTimeout: 5 * time.Second,
		RateLimit:    100,
		Burst:        10,
		Registry:     reg,
	})
	require.NoError(t, err)

	_, err = c.ListMarketTypes(context.Background(), &sportsv1.ListMarketTypesRequest{})
	require.True(t, SessionExpired(err), "err=%v", err)
	require.True(t, bferrors.IsAuth(err))

	require.NoError(t, c.Login(context.Background()))
	got, err := c.ListMarketTypes(context.Background(), &sportsv1.ListMarketTypesRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, sportsv1.MarketType("MATCH_ODDS"), *got[0].MarketType)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	require.True(t, names["bfapi_rpc_client_calls_total"])
	require.True(t, names["bfapi_session_logins_total"])

	require.NoError(t, c.Close(context.Background()))
	require.False(t, c.Session.State().Authenticated)
}

func TestSessionExpired(t *testing.T) {
	code := sportsv1.APINGExceptionErrorCodeNoSession
	require.True(t, SessionExpired(&sportsv1.APINGException{ErrorCode: &code}))
	other := sportsv1.APINGExceptionErrorCodeTooMuchData
	require.False(t, SessionExpired(&sportsv1.APINGException{ErrorCode: &other}))
	require.False(t, SessionExpired(&sportsv1.APINGException{}))
	require.True(t, SessionExpired(fmt.Errorf("wrapped: %w", bferrors.ErrNotAuthenticated)))
	require.False(t, SessionExpired(nil))
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Session.Username = "u"
	cfg.Session.Certificate = "/tmp/client.p12"
	cfg.RPC.RateLimit = 5

	c := FromConfig(cfg)
	require.Equal(t, "u", c.Credentials.Username)
	require.Equal(t, "/tmp/client.p12", c.Credentials.CertificatePath)
	require.Equal(t, cfg.RPC.Endpoint, c.Endpoint)
	require.Equal(t, 5.0, c.RateLimit)

	_, err := New(c)
	require.NoError(t, err)
}

func TestNewRejectsBadProxy(t *testing.T) {
	_, err := New(Config{Proxy: "::bad"})
	require.Error(t, err)
}
