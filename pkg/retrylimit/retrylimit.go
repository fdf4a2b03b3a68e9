// Package retrylimit paces calls to a rate-limited API and retries the ones
// that fail transiently. The pace adapts: it speeds up after successes and
// slows down whenever the server pushes back.
//
// Example usage:
//
//	lim := retrylimit.NewAdaptiveLimiter(40, 1, 50, 1, 0.5)
//	err := retrylimit.Do(ctx, lim, retrylimit.DefaultConfig(), func() error {
//	    return doSomeWork()
//	})
package retrylimit

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// AdaptiveLimiter manages a rate limit that adjusts automatically based
// on the outcome of requests. Safe for concurrent use.
type AdaptiveLimiter struct {
	mu        sync.Mutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
}

// NewAdaptiveLimiter starts at initial requests per second, stays within
// [min, max], adds stepUp after a success and multiplies by stepDown after
// a rate limited call.
func NewAdaptiveLimiter(initial, min, max, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	min = rate.Limit(max64(float64(min), 1))
	initial = rate.Limit(max64(float64(initial), float64(min)))
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, 1),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or the context is canceled.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

// Success raises the rate, unless the server pushed back in the last ten seconds.
func (a *AdaptiveLimiter) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastError) > 10*time.Second {
		a.setLimit(a.limiter.Limit() + a.stepUp)
	}
}

// RateLimited lowers the rate.
func (a *AdaptiveLimiter) RateLimited() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = time.Now()
	a.setLimit(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// CurrentLimit returns the current requests per second.
func (a *AdaptiveLimiter) CurrentLimit() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return float64(a.limiter.Limit())
}

func (a *AdaptiveLimiter) setLimit(l rate.Limit) {
	if l > a.maxLimit {
		l = a.maxLimit
	} else if l < a.minLimit {
		l = a.minLimit
	}
	a.limiter.SetLimit(l)
}

// permanentError stops retries immediately.
type permanentError struct{ err error }

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Config configures retry behavior.
type Config struct {
	MaxAttempts    int           // at least 1
	InitialDelay   time.Duration // first backoff after a failure
	MaxDelay       time.Duration
	RateLimitDelay time.Duration // fixed pause after a 429
	Multiplier     float64

	// StatusCode extracts the HTTP status of err, or 0 when it carries none.
	// Errors without a status are retried with backoff.
	StatusCode func(error) int
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:    5,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       10 * time.Second,
		RateLimitDelay: time.Second,
		Multiplier:     2.0,
	}
}

// Do calls fn until it succeeds, returns a Permanent error, fails with a
// 4xx status other than 429, or runs out of attempts.
func Do(ctx context.Context, lim *AdaptiveLimiter, cfg Config, fn func() error) error {
	attempts := max(cfg.MaxAttempts, 1)
	delay := cfg.InitialDelay

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lim != nil {
			if werr := lim.Wait(ctx); werr != nil {
				return werr
			}
		}

		if err = fn(); err == nil {
			if lim != nil {
				lim.Success()
			}
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}

		status := 0
		if cfg.StatusCode != nil {
			status = cfg.StatusCode(err)
		}

		pause := delay
		switch {
		case status == http.StatusTooManyRequests:
			if lim != nil {
				lim.RateLimited()
			}
			pause = cfg.RateLimitDelay
		case status >= 400 && status < 500:
			return err
		case status >= 500:
			if lim != nil {
				lim.RateLimited()
			}
		}
		if attempt == attempts {
			break
		}

		log.Printf("[WARN] Request failed (attempt %d/%d): %v. Retrying in %v", attempt, attempts, err, pause)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(jitter(pause)):
		}

		if status != http.StatusTooManyRequests {
			delay = min(time.Duration(float64(delay)*cfg.Multiplier), cfg.MaxDelay)
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", attempts, err)
}

// jitter adds up to 25% to d.
func jitter(d time.Duration) time.Duration {
	if d < 4 {
		return d
	}
	return d + time.Duration(rand.Int63n(int64(d/4)))
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
