package cache

import (
	"context"
	"time"
)

// Cache is a TTL byte cache for rendered pages. Entries expire on their own;
// the only explicit invalidation is Clear. Writes inside the TTL window are
// therefore allowed to serve stale content.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}
