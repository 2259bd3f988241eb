package observability

import (
	"testing"
	"time"
)

type countingRPC struct{ calls int }

func (c *countingRPC) ClientCall(string, RPCResult, time.Duration) { c.calls++ }

type countingSession struct{ logins, keepAlives int }

func (c *countingSession) Login(SessionResult, time.Duration) { c.logins++ }
func (c *countingSession) KeepAlive(SessionResult)            { c.keepAlives++ }

func TestAtomicRPCObserverZeroValueAndSwap(t *testing.T) {
	var a AtomicRPCObserver
	a.ClientCall("m", RPCResultOK, time.Millisecond)

	c := &countingRPC{}
	a.Set(c)
	a.ClientCall("m", RPCResultOK, time.Millisecond)
	a.Set(nil)
	a.ClientCall("m", RPCResultOK, time.Millisecond)
	if c.calls != 1 {
		t.Fatalf("calls=%d, want 1", c.calls)
	}
}

func TestAtomicSessionObserverSwap(t *testing.T) {
	a := NewAtomicSessionObserver()
	c := &countingSession{}
	a.Set(c)
	a.Login(SessionResultOK, time.Second)
	a.KeepAlive(SessionResultRejected)
	if c.logins != 1 || c.keepAlives != 1 {
		t.Fatalf("unexpected counts: %+v", c)
	}
}
