package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds extraction responses in process memory with TTL
// expiry. It is the store used when no cache directory is configured:
// fast, and good enough to absorb repeated items within one run.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache. defaultTTL applies when Set is
// called with a zero TTL; cleanupInterval bounds how long expired
// entries linger before the sweep reclaims them.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the stored payload for key, if present and unexpired.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a payload under key for ttl, or the default TTL when ttl
// is zero. The error return exists to satisfy the Cache interface
// shared with the disk layer; it is always nil here.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes one entry. Deleting an absent key is a no-op.
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear drops every entry.
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
