package prom

import (
	"net/http"
	"time"

	"github.com/floegence/bfapi/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry returns a fresh Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Handler returns a Prometheus HTTP handler bound to the registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// RPCObserver exports call metrics to Prometheus.
type RPCObserver struct {
	clientCalls       *prometheus.CounterVec
	clientCallLatency *prometheus.HistogramVec
}

// NewRPCObserver registers call metrics on the registry.
func NewRPCObserver(reg *prometheus.Registry) *RPCObserver {
	o := &RPCObserver{
		clientCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bfapi_rpc_client_calls_total",
			Help: "JSON-RPC call outcomes by method.",
		}, []string{"method", "result"}),
		clientCallLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bfapi_rpc_client_call_latency_seconds",
			Help:    "JSON-RPC call latency by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	reg.MustRegister(o.clientCalls, o.clientCallLatency)
	return o
}

func (o *RPCObserver) ClientCall(method string, result observability.RPCResult, d time.Duration) {
	o.clientCalls.WithLabelValues(method, string(result)).Inc()
	o.clientCallLatency.WithLabelValues(method).Observe(d.Seconds())
}

// SessionObserver exports session lifecycle metrics to Prometheus.
type SessionObserver struct {
	logins       *prometheus.CounterVec
	loginLatency prometheus.Histogram
	keepAlives   *prometheus.CounterVec
}

// NewSessionObserver registers session metrics on the registry.
func NewSessionObserver(reg *prometheus.Registry) *SessionObserver {
	o := &SessionObserver{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bfapi_session_logins_total",
			Help: "Certificate login outcomes.",
		}, []string{"result"}),
		loginLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bfapi_session_login_latency_seconds",
			Help:    "Certificate login latency.",
			Buckets: prometheus.DefBuckets,
		}),
		keepAlives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bfapi_session_keepalives_total",
			Help: "Keep-alive outcomes.",
		}, []string{"result"}),
	}
	reg.MustRegister(o.logins, o.loginLatency, o.keepAlives)
	return o
}

func (o *SessionObserver) Login(result observability.SessionResult, d time.Duration) {
	o.logins.WithLabelValues(string(result)).Inc()
	o.loginLatency.Observe(d.Seconds())
}

func (o *SessionObserver) KeepAlive(result observability.SessionResult) {
	o.keepAlives.WithLabelValues(string(result)).Inc()
}
