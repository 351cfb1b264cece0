package cache

import (
	"context"
	"time"
)

// NullCache misses on every lookup. It backs `--no-cache` and serves as the
// fallback when no cache directory can be determined.
type NullCache struct{}

var _ Cache = NullCache{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)         { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                      { return nil }
func (NullCache) Clear(context.Context) (int, error)                        { return 0, nil }
func (NullCache) Close() error                                              { return nil }
