package catalog

import (
	"context"
	"sync"
	"time"
)

// Cache keeps the last successful listing of a Provider for TTL.
// A zero TTL disables caching.
type Cache struct {
	src Provider
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	items   []Item
	fetched time.Time
}

func NewCache(src Provider, ttl time.Duration) *Cache {
	return &Cache{src: src, ttl: ttl, now: time.Now}
}

func (c *Cache) Items(ctx context.Context) ([]Item, error) {
	if c.ttl <= 0 {
		return c.src.Items(ctx)
	}

	c.mu.RLock()
	if c.items != nil && c.now().Sub(c.fetched) < c.ttl {
		out := make([]Item, len(c.items))
		copy(out, c.items)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	items, err := c.src.Items(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}

	c.mu.Lock()
	c.items = items
	c.fetched = c.now()
	c.mu.Unlock()

	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

// Invalidate drops the cached listing.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}
