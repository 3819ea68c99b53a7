package bgs

import (
	"context"
	"fmt"
	"sync"
)

// CachedProvider wraps a Provider with an in-memory LRU cache. Field
// values change with model revisions, not per call, so repeated lookups
// for the same site, altitude, and date are served locally.
type CachedProvider struct {
	inner Provider
	cache *lruCache
}

// NewCachedProvider creates a cache decorator around a declination
// provider.
func NewCachedProvider(inner Provider, maxEntries int) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

func (c *CachedProvider) Declination(ctx context.Context, req Request) (float64, error) {
	key := cacheKey(req)
	if v, ok := c.cache.get(key); ok {
		return v, nil
	}
	v, err := c.inner.Declination(ctx, req)
	if err != nil {
		// Errors are not cached so transient failures can be retried
		// by the caller.
		return v, err
	}
	c.cache.put(key, v)
	return v, nil
}

func cacheKey(req Request) string {
	date := req.Date
	if date.IsZero() {
		date = clock.Now().UTC()
	}
	return fmt.Sprintf("%.6f,%.6f|%.3f|%s", req.Lon, req.Lat, req.AltitudeKm, date.Format("2006-01-02"))
}

// lruCache is a simple thread-safe LRU cache for declination values.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value float64
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
