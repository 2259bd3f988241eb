package defaults

import "time"

const (
	// RPCTimeout bounds a single JSON-RPC exchange.
	RPCTimeout = 30 * time.Second
	// LoginTimeout bounds a certificate login, keep-alive or logout request.
	LoginTimeout = 30 * time.Second
	// MaxResponseBytes caps a JSON-RPC response body.
	MaxResponseBytes = 32 << 20
	// SessionLifetime is how long the identity service keeps an idle session.
	SessionLifetime = 12 * time.Hour
)

const (
	RPCEndpoint       = "https://api.betfair.com/exchange/betting/json-rpc/v1"
	LoginEndpoint     = "https://identitysso-cert.betfair.com/api/certlogin"
	KeepAliveEndpoint = "https://identitysso.betfair.com/api/keepAlive"
	LogoutEndpoint    = "https://identitysso.betfair.com/api/logout"
)
