// File: internal/conversations/retry.go
package conversations

import (
	"context"
	"time"
)

// RetryPolicy defines simple retry behavior: how many additional attempts to
// make after a transient failure, and how long to wait before each one.
type RetryPolicy struct {
	MaxRetries int
	// Delay returns the wait before re-running attempt+1. attempt is the
	// zero-based attempt that just failed.
	Delay func(attempt int) time.Duration
}

// ServerRetryPolicy retries 500/503 responses with linear backoff:
// 1s, 2s, 3s.
func ServerRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		Delay: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * time.Second
		},
	}
}

// NetworkRetryPolicy retries connection-level failures with a longer linear
// backoff: 2s, 4s, 6s.
func NetworkRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		Delay: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * 2 * time.Second
		},
	}
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
