// README: Optional Redis read-through cache for upstream flight responses.
package flight

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wayfare/internal/observability"
)

// Cache memoizes raw upstream bodies keyed by route and airline. A nil Cache
// or a nil redis client degrades to always-miss, so the service works without
// Redis configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func cacheKey(source, destination, airline string) string {
	return fmt.Sprintf("flights:%s:%s:%s", source, destination, airline)
}

// Get returns the cached body and whether it was present. Redis errors count
// as misses; the upstream call is the recovery path.
func (c *Cache) Get(ctx context.Context, source, destination, airline string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, cacheKey(source, destination, airline)).Bytes()
	if err != nil {
		observability.FlightCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	observability.FlightCacheHits.WithLabelValues("hit").Inc()
	return body, true
}

// Set stores the body best-effort. Failures are ignored.
func (c *Cache) Set(ctx context.Context, source, destination, airline string, body []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, cacheKey(source, destination, airline), body, c.ttl)
}
