package coffee

import (
	"context"
	"sync"
	"time"

	"coffeebar.GO/core/cache"
	"go.uber.org/zap"
)

const (
	cacheKey = "coffee:catalog"
	CacheTag = "catalog"
)

// Catalog holds the current item collection. The collection is replaced
// wholesale on each successful fetch; a failed fetch keeps the previous one.
//
// Concurrent refreshes are not ordered: the last one to complete wins.
type Catalog struct {
	fetcher *Fetcher
	cache   *cache.Cache
	ttl     time.Duration
	log     *zap.Logger

	mu    sync.RWMutex
	items []Item
}

func NewCatalog(fetcher *Fetcher, c *cache.Cache, ttl time.Duration, log *zap.Logger) *Catalog {
	if c == nil {
		c = cache.NewCache()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{fetcher: fetcher, cache: c, ttl: ttl, log: log, items: []Item{}}
}

// Load returns the cached collection while it is fresh and refreshes it
// otherwise.
func (c *Catalog) Load(ctx context.Context) ([]Item, error) {
	if items, ok := c.cache.GetOrDefault(cacheKey, nil).([]Item); ok {
		return items, nil
	}
	return c.Refresh(ctx)
}

// Refresh fetches both listings. On failure the previous collection is
// returned together with the error.
func (c *Catalog) Refresh(ctx context.Context) ([]Item, error) {
	items, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return c.Items(), err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	if c.ttl > 0 {
		c.cache.Set(cacheKey, items, c.ttl, []string{CacheTag})
	}
	c.log.Info("catalog refreshed", zap.Int("items", len(items)))
	return items, nil
}

// Items returns the current collection.
func (c *Catalog) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Find looks an item up by its cart key.
func (c *Catalog) Find(key string) (Item, bool) {
	for _, it := range c.Items() {
		if it.Key() == key {
			return it, true
		}
	}
	return Item{}, false
}

// Invalidate drops the cached snapshot so the next Load refetches.
func (c *Catalog) Invalidate() {
	c.cache.DeleteByTag(CacheTag)
}
