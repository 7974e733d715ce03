package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer.
// Implementations must treat a miss as (false, nil), not an error.
type Cache interface {
	// Get fetches a value and unmarshals it into dest.
	// Returns found=false on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
