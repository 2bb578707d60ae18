package hashing

import (
	"sync"
)

// ThreadSafeNodeCache wraps NodeCache with mutex protection for concurrent access.
type ThreadSafeNodeCache struct {
	cache *NodeCache
	mu    sync.RWMutex
}

// NewThreadSafeNodeCache creates a new thread-safe cache.
// maxEntries of 0 means unlimited capacity.
func NewThreadSafeNodeCache(maxEntries int) *ThreadSafeNodeCache {
	return &ThreadSafeNodeCache{
		cache: NewNodeCache(maxEntries),
	}
}

// Lookup returns the cached count for key.
func (c *ThreadSafeNodeCache) Lookup(key NodeKey) (uint64, bool) {
	// Lookup updates hit statistics, so it needs the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(key)
}

// Store records the count for key.
func (c *ThreadSafeNodeCache) Store(key NodeKey, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(key, nodes)
}

// Len returns the number of cached entries.
func (c *ThreadSafeNodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Stats returns the number of lookup hits and misses.
func (c *ThreadSafeNodeCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Stats()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeNodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}
