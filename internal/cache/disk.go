package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists entries as files under a directory, with TTL
// enforced via file modification time. Extraction responses survive
// process restarts between collection cycles.
type DiskCache struct {
	dir        string
	defaultTTL time.Duration
}

// NewDiskCache creates (if needed) the cache directory.
func NewDiskCache(dir string, defaultTTL time.Duration) *DiskCache {
	_ = os.MkdirAll(dir, 0o755)
	return &DiskCache{dir: dir, defaultTTL: defaultTTL}
}

func (c *DiskCache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".cache")
}

func (c *DiskCache) Get(key string) ([]byte, bool) {
	p := c.path(key)
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	if c.defaultTTL > 0 && time.Since(info.ModTime()) > c.defaultTTL {
		_ = os.Remove(p)
		return nil, false
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *DiskCache) Set(key string, value []byte, _ time.Duration) error {
	return os.WriteFile(c.path(key), value, 0o644)
}

func (c *DiskCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *DiskCache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".cache" {
			_ = os.Remove(filepath.Join(c.dir, e.Name()))
		}
	}
	return nil
}
