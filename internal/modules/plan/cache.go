// README: Redis cache for the recent-history listing.
package plan

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	historyRecentKey = "history:recent"
	// Short TTL; the cache only has to absorb bursts of listing reads between writes.
	historyCacheTTL = 5 * time.Minute
)

// HistoryCache holds the default-limit history listing. It caches persisted
// record summaries only, never model responses. All failures are soft: the
// caller falls back to the store.
type HistoryCache struct {
	redis *redis.Client
}

func NewHistoryCache(redis *redis.Client) *HistoryCache {
	return &HistoryCache{redis: redis}
}

// Get returns the cached listing and whether it was present.
func (c *HistoryCache) Get(ctx context.Context) ([]RecordSummary, bool, error) {
	val, err := c.redis.Get(ctx, historyRecentKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []RecordSummary
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		// Stale or corrupt entry; drop it and report a miss.
		_ = c.redis.Del(ctx, historyRecentKey).Err()
		return nil, false, nil
	}
	return items, true, nil
}

func (c *HistoryCache) Set(ctx context.Context, items []RecordSummary) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, historyRecentKey, b, historyCacheTTL).Err()
}

// Invalidate drops the cached listing; called after every insert and delete.
func (c *HistoryCache) Invalidate(ctx context.Context) error {
	return c.redis.Del(ctx, historyRecentKey).Err()
}
