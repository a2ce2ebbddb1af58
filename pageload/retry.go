package pageload

import (
	"context"
	"time"
)

// FetchFunc is the signature for a page fetch function.
type FetchFunc func(ctx context.Context, filename string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 500ms,
// 1s, 2s. A page that fails all attempts stays pending and is retried on
// the next load pass, so the schedule stays short.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second, 2 * time.Second}
}

// FetchWithRetryDelays attempts a fetch with backoff retries according to
// the delay schedule (one initial attempt plus one retry per delay).
func FetchWithRetryDelays(ctx context.Context, filename string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		dataURL, err := fetch(ctx, filename)
		if err == nil {
			return dataURL, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
