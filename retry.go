package reactdict

import (
	"context"
	"time"
)

// LogFunc is the signature for a printf-style logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays between attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retry calls fn until it succeeds, making one initial attempt plus one
// retry per entry in delays. Errors coded EINVALID, ENOTFOUND or
// ENOTIMPLEMENTED are returned immediately. The logger, if provided, is
// called before each retry.
func Retry[T any](ctx context.Context, delays []time.Duration, fn func(context.Context) (T, error), logger LogFunc) (T, error) {
	var zero T
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		switch ErrorCode(err) {
		case EINVALID, ENOTFOUND, ENOTIMPLEMENTED:
			return zero, err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		if logger != nil {
			logger("retry (attempt %d): %v", attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}
