package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/pprep/pkg/cache"
	"github.com/matzehuels/pprep/pkg/exif"
	"github.com/matzehuels/pprep/pkg/observability"
)

// cacheKeyType labels metadata entries in cache hooks.
const cacheKeyType = "metadata"

// DefaultMetadataTTL is how long metadata stays cached.
const DefaultMetadataTTL = 30 * 24 * time.Hour

// MetadataReader reads image metadata through a cache. Entries are keyed by
// path, size and modification time, so changed files are read again.
type MetadataReader struct {
	Cache cache.Cache
	TTL   time.Duration
}

// NewMetadataReader creates a reader. A nil cache disables caching.
func NewMetadataReader(c cache.Cache) *MetadataReader {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &MetadataReader{Cache: c, TTL: DefaultMetadataTTL}
}

// Read returns the metadata of the file at path and whether it came from the
// cache. Cache failures fall back to reading the file.
func (m *MetadataReader) Read(ctx context.Context, path string) (*exif.Metadata, bool, error) {
	hooks := observability.Cache()
	key, err := cache.MetadataKey(path)
	if err == nil {
		if data, hit, err := m.Cache.Get(ctx, key); err == nil && hit {
			var meta exif.Metadata
			if err := json.Unmarshal(data, &meta); err == nil {
				hooks.OnCacheHit(ctx, cacheKeyType)
				return &meta, true, nil
			}
		}
		hooks.OnCacheMiss(ctx, cacheKeyType)
	}

	meta, err := exif.Read(path)
	if err != nil {
		return nil, false, err
	}
	if key != "" {
		if data, err := json.Marshal(meta); err == nil {
			if m.Cache.Set(ctx, key, data, m.TTL) == nil {
				hooks.OnCacheSet(ctx, cacheKeyType, len(data))
			}
		}
	}
	return meta, false, nil
}

// Metadata reads the metadata of all inputs in parallel. The result is in
// input order.
func (r *Runner) Metadata(ctx context.Context, inputs []string, reader *MetadataReader) ([]*exif.Metadata, error) {
	out := make([]*exif.Metadata, len(inputs))
	hits := 0
	err := r.batch(ctx, "metadata", inputs, func(ctx context.Context, i int) error {
		meta, hit, err := reader.Read(ctx, inputs[i])
		if err != nil {
			return err
		}
		out[i] = meta
		if hit {
			r.mu.Lock()
			hits++
			r.mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("read metadata", "files", len(inputs), "cached", hits)
	return out, nil
}
