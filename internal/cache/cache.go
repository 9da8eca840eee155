// Package cache stores LLM extraction responses so identical item text
// is never sent to a provider twice.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk, and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from item text.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "signalengine:v1:" + hex.EncodeToString(hash[:])
}
