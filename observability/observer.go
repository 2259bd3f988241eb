package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

type RPCResult string

const (
	RPCResultOK             RPCResult = "ok"
	RPCResultException      RPCResult = "exception"
	RPCResultProtocolError  RPCResult = "protocol_error"
	RPCResultTransportError RPCResult = "transport_error"
	RPCResultAuthError      RPCResult = "auth_error"
	RPCResultCanceled       RPCResult = "canceled"
)

type SessionResult string

const (
	SessionResultOK          SessionResult = "ok"
	SessionResultRejected    SessionResult = "rejected"
	SessionResultCertificate SessionResult = "certificate"
	SessionResultFailed      SessionResult = "failed"
	SessionResultCanceled    SessionResult = "canceled"
)

// RPCObserver receives call-level metric events.
type RPCObserver interface {
	ClientCall(method string, result RPCResult, d time.Duration)
}

// SessionObserver receives session lifecycle metric events.
type SessionObserver interface {
	Login(result SessionResult, d time.Duration)
	KeepAlive(result SessionResult)
}

type noopRPCObserver struct{}

func (noopRPCObserver) ClientCall(string, RPCResult, time.Duration) {}

type noopSessionObserver struct{}

func (noopSessionObserver) Login(SessionResult, time.Duration) {}
func (noopSessionObserver) KeepAlive(SessionResult)            {}

// NoopRPCObserver is a zero-cost observer used when metrics are disabled.
var NoopRPCObserver RPCObserver = noopRPCObserver{}

// NoopSessionObserver is a zero-cost observer used when metrics are disabled.
var NoopSessionObserver SessionObserver = noopSessionObserver{}

// AtomicRPCObserver swaps its delegate at runtime.
type AtomicRPCObserver struct {
	once sync.Once
	v    atomic.Value
}

type rpcObserverHolder struct {
	obs RPCObserver
}

// NewAtomicRPCObserver returns an initialized atomic observer.
func NewAtomicRPCObserver() *AtomicRPCObserver {
	a := &AtomicRPCObserver{}
	a.once.Do(func() { a.v.Store(&rpcObserverHolder{obs: NoopRPCObserver}) })
	return a
}

// Set replaces the delegate, falling back to the no-op observer on nil.
func (a *AtomicRPCObserver) Set(obs RPCObserver) {
	if obs == nil {
		obs = NoopRPCObserver
	}
	a.once.Do(func() { a.v.Store(&rpcObserverHolder{obs: NoopRPCObserver}) })
	a.v.Store(&rpcObserverHolder{obs: obs})
}

func (a *AtomicRPCObserver) load() RPCObserver {
	a.once.Do(func() { a.v.Store(&rpcObserverHolder{obs: NoopRPCObserver}) })
	return a.v.Load().(*rpcObserverHolder).obs
}

func (a *AtomicRPCObserver) ClientCall(method string, result RPCResult, d time.Duration) {
	a.load().ClientCall(method, result, d)
}

// AtomicSessionObserver swaps its delegate at runtime.
type AtomicSessionObserver struct {
	once sync.Once
	v    atomic.Value
}

type sessionObserverHolder struct {
	obs SessionObserver
}

// NewAtomicSessionObserver returns an initialized atomic observer.
func NewAtomicSessionObserver() *AtomicSessionObserver {
	a := &AtomicSessionObserver{}
	a.once.Do(func() { a.v.Store(&sessionObserverHolder{obs: NoopSessionObserver}) })
	return a
}

// Set replaces the delegate, falling back to the no-op observer on nil.
func (a *AtomicSessionObserver) Set(obs SessionObserver) {
	if obs == nil {
		obs = NoopSessionObserver
	}
	a.once.Do(func() { a.v.Store(&sessionObserverHolder{obs: NoopSessionObserver}) })
	a.v.Store(&sessionObserverHolder{obs: obs})
}

func (a *AtomicSessionObserver) load() SessionObserver {
	a.once.Do(func() { a.v.Store(&sessionObserverHolder{obs: NoopSessionObserver}) })
	return a.v.Load().(*sessionObserverHolder).obs
}

func (a *AtomicSessionObserver) Login(result SessionResult, d time.Duration) {
	a.load().Login(result, d)
}
func (a *AtomicSessionObserver) KeepAlive(result SessionResult) { a.load().KeepAlive(result) }
