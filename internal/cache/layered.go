package cache

import "time"

// LayeredCache fronts a disk cache with a memory cache so repeated
// extractions of the same content stay cheap across runs. Reads check
// memory first; disk hits are promoted so the next lookup stays in
// process.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache builds a memory layer over a disk layer rooted at
// diskDir. Each layer keeps its own TTL: memory entries turn over
// quickly while disk entries survive between invocations.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks the memory layer, then disk. A disk hit is written back
// into memory with the memory default TTL before returning.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}
	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, 0)
		return val, true
	}
	return nil, false
}

// Set writes the payload to both layers with the same ttl.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes the entry from both layers, reporting the disk error
// since that is the layer that can actually fail.
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear empties both layers.
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
