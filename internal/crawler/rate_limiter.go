package crawler

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter spaces out requests per host using a token bucket. The
// first request to a host passes immediately; every later request waits
// until the configured delay has elapsed since the previous one. The
// crawl loop only depends on Wait, so the delay policy can be replaced
// without touching frontier or visited-set logic.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	delay    time.Duration
}

// NewRateLimiter creates a rate limiter with the given per-host delay.
// A zero delay disables waiting entirely.
func NewRateLimiter(delay time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until a request to the given URL's host may proceed, or
// until the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context, urlStr string) error {
	if r.delay <= 0 {
		return ctx.Err()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	return r.limiter(parsedURL.Host).Wait(ctx)
}

// limiter returns the token bucket for a host, creating it on first use
func (r *RateLimiter) limiter(host string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.limiters[host]; ok {
		return l
	}

	l := rate.NewLimiter(rate.Every(r.delay), 1)
	r.limiters[host] = l
	return l
}
