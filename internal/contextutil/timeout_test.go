package contextutil

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithTimeout_NilParent_NoTimeoutReturnsNonNilContext(t *testing.T) {
	ctx, cancel := WithTimeout(nil, 0)
	t.Cleanup(cancel)
	if ctx == nil {
		t.Fatalf("expected non-nil context")
	}
	if err := Err(ctx); err != nil {
		t.Fatalf("expected nil Err, got %v", err)
	}
}

func TestWithTimeout_BudgetRecordsCause(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond)
	t.Cleanup(cancel)
	<-ctx.Done()

	err := Err(ctx)
	if err != ErrTimeout {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ErrTimeout must match context.DeadlineExceeded")
	}
}

func TestWithTimeout_ParentCancelWins(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithTimeout(parent, time.Hour)
	t.Cleanup(cancel)
	cancelParent()
	<-ctx.Done()

	if err := Err(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestErr_IgnoresUnrelatedCause(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errors.New("shutting down"))

	if err := Err(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
