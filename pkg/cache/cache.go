package cache

import (
	"context"
	"time"
)

// Cache is the contract for the shared cache layer.
// Allows swapping implementation (Redis, in-memory) without touching callers.
type Cache interface {
	// Increment atomically increments the integer value at key.
	// Returns the value after the increment.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on key. No-op if the key does not exist.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// TTL returns the remaining TTL of key.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
