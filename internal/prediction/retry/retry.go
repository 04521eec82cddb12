// Package retry re-attempts failed prediction calls with exponential
// backoff. Only errors flagged retryable are retried; everything else is
// re-raised immediately.
package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/pulseai/gateway/internal/core/domain"
)

// Config defines retry behavior. MaxAttempts counts retries, so an
// operation runs at most MaxAttempts+1 times.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      float64 // fraction of the delay randomized in each direction
}

// DefaultConfig provides sensible defaults. The jitter keeps concurrent
// callers from retrying in lockstep during a sustained outage.
var DefaultConfig = Config{
	MaxAttempts: 3,
	BaseDelay:   1 * time.Second,
	MaxDelay:    30 * time.Second,
	Jitter:      0.1,
}

// Operation is a single attempt against the inference service.
type Operation func(ctx context.Context) ([]byte, error)

// Do runs op until it succeeds, fails with a non-retryable error, or the
// attempt budget is exhausted. The last error is returned verbatim so
// callers can classify it with errors.As.
func Do(ctx context.Context, cfg Config, op Operation) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !domain.IsRetryable(err) || attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff(attempt, cfg)):
		}
	}

	return nil, lastErr
}

// backoff computes the delay before retrying attempt n (0-indexed):
// BaseDelay × 2ⁿ, capped at MaxDelay, jittered by ±Jitter.
func backoff(attempt int, cfg Config) time.Duration {
	delay := float64(cfg.BaseDelay) * math.Pow(2, float64(attempt))
	if cfg.MaxDelay > 0 && delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.Jitter > 0 {
		delay += delay * cfg.Jitter * (2*rand.Float64() - 1)
	}
	return time.Duration(delay)
}
