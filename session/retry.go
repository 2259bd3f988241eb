package session

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/floegence/bfapi/bferrors"
)

// LoginWithRetry calls m.Login until it succeeds, fails permanently, b gives up or ctx ends.
// Only transient failures (network errors, timeouts, unexpected HTTP status) are retried.
func LoginWithRetry(ctx context.Context, m *Manager, b backoff.BackOff) (string, error) {
	var token string
	op := func() error {
		t, err := m.Login(ctx)
		if err != nil {
			if !bferrors.Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		token = t
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return "", err
	}
	return token, nil
}
