// ABOUTME: In-memory cache with TTL-based expiration for generated build sets
// ABOUTME: Thread-safe generic cache using sync.Map with background cleanup

package cache

import (
	"log/slog"
	"sync"
	"time"
)

// CleanupInterval is how often expired entries are swept
const CleanupInterval = time.Minute

type entry[V any] struct {
	data      V
	expiresAt time.Time
}

// Cache maps string keys to values of type V until their TTL passes
type Cache[V any] struct {
	store sync.Map
	ttl   time.Duration
	now   func() time.Time
	done  chan struct{}
	once  sync.Once
}

// New creates a cache and starts its cleanup loop. Call Stop to end the loop.
func New[V any](ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		ttl:  ttl,
		now:  time.Now,
		done: make(chan struct{}),
	}
	go c.startCleanup(CleanupInterval)
	return c
}

// TTL returns the default entry lifetime
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return zero, false
	}

	e := val.(entry[V])
	if c.now().After(e.expiresAt) {
		c.store.Delete(key)
		slog.Debug("Cache expired", "key", key)
		return zero, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.store.Store(key, entry[V]{data: value, expiresAt: c.now().Add(ttl)})
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

func (c *Cache[V]) Clear(key string) {
	c.store.Delete(key)
}

// Purge drops every entry, used when the catalog is reloaded
func (c *Cache[V]) Purge() {
	c.store.Range(func(key, _ any) bool {
		c.store.Delete(key)
		return true
	})
}

// Len counts entries, including expired ones not yet swept
func (c *Cache[V]) Len() int {
	n := 0
	c.store.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Stop ends the cleanup loop
func (c *Cache[V]) Stop() {
	c.once.Do(func() { close(c.done) })
}

func (c *Cache[V]) sweep() {
	now := c.now()
	c.store.Range(func(key, val any) bool {
		if now.After(val.(entry[V]).expiresAt) {
			c.store.Delete(key)
		}
		return true
	})
}

func (c *Cache[V]) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.done:
			return
		}
	}
}
