// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Thread-safe cache using sync.Map with background cleanup

package cache

import (
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	data      any
	expiresAt time.Time
}

type Cache struct {
	store sync.Map
	ttl   time.Duration
}

func New(ttl time.Duration) *Cache {
	c := &Cache{ttl: ttl}
	go c.startCleanup()
	return c
}

func (c *Cache) Get(key string) (any, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		return nil, false
	}

	return e.data, true
}

func (c *Cache) Set(key string, value any) {
	c.store.Store(key, entry{
		data:      value,
		expiresAt: time.Now().Add(c.ttl),
	})
	slog.Debug("Cache set", "key", key, "ttl", c.ttl)
}

func (c *Cache) Clear(key string) {
	c.store.Delete(key)
}

func (c *Cache) startCleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.store.Range(func(key, val any) bool {
			if now.After(val.(entry).expiresAt) {
				c.store.Delete(key)
			}
			return true
		})
	}
}
