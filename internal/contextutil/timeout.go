package contextutil

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is the cause recorded when a WithTimeout budget runs out. It wraps
// context.DeadlineExceeded, so errors.Is checks against the standard error still hold.
var ErrTimeout = fmt.Errorf("request timeout elapsed: %w", context.DeadlineExceeded)

// WithTimeout bounds parent by d. It returns parent unchanged when d<=0 and treats a nil
// parent as context.Background().
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if d <= 0 {
		return parent, func() {}
	}
	return context.WithTimeoutCause(parent, d, ErrTimeout)
}

// Err returns why ctx ended, preferring a recorded cause such as ErrTimeout when it still
// matches ctx.Err(). It returns nil while ctx is live.
func Err(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if cause := context.Cause(ctx); errors.Is(cause, err) {
		return cause
	}
	return err
}
