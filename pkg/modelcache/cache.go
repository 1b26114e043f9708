package modelcache

import (
	"context"
	"time"
)

// Cache is a content-addressed byte-blob store with expiration. Every
// implementation must treat Get on a missing or expired key as a plain
// miss (hit == false, err == nil), reserving a non-nil error for genuine
// backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache disables caching: every Get misses, every Set and Delete is a
// no-op. Used when a client runs one-shot (e.g. the CLI's "build" command
// processing a single file) and a cache would only add bookkeeping.
type NullCache struct{}

// NewNullCache returns a Cache that never stores anything.
func NewNullCache() Cache { return &NullCache{} }

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}
func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }
func (c *NullCache) Close() error                                 { return nil }

var _ Cache = (*NullCache)(nil)
