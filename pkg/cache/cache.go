// Package cache stores derived data, such as image metadata, between runs.
//
// Backends:
//   - [FileCache]: one JSON file per entry under a local directory (default)
//   - [RedisCache]: a shared Redis instance, for batch jobs on several hosts
//   - [NullCache]: caching disabled
//
// Keys are built with the helpers in this package so that an entry is
// invalidated when its source file changes.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
	// Close releases the backend's resources.
	Close() error
}
