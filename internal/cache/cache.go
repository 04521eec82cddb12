// Package cache stores recent prediction results keyed by a deterministic
// hash of the assessment input. Identical submissions inside the TTL are
// answered without a network call. Cache failures are never fatal: a broken
// store degrades to a miss.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/pulseai/gateway/internal/core/domain"
)

// DefaultTTL bounds how long a cached prediction stays fresh.
const DefaultTTL = 5 * time.Minute

// Store is the prediction cache capability. Get returns (nil, nil) on a
// miss; errors are reported but treated as misses by callers.
type Store interface {
	Get(ctx context.Context, key string) (*domain.PredictionResult, error)
	Set(ctx context.Context, key string, result domain.PredictionResult) error
	Close() error
}

// Key derives the cache key for an input. Struct field order makes the
// JSON encoding deterministic, so equal inputs always hash the same.
func Key(input domain.AssessmentInput) string {
	data, _ := json.Marshal(input)
	sum := md5.Sum(data)
	return "prediction:" + hex.EncodeToString(sum[:])
}
