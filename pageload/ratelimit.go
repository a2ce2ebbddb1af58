package pageload

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles page fetches against the processing service using a
// token bucket. The pool already caps concurrency; the limiter spaces
// request starts so bursts of small pages don't hammer the server.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter allowing rps requests per second with a
// burst of one (no bursting allowed).
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows another request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
