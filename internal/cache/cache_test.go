package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("fuel shortage in colombo")
	b := Key("fuel shortage in colombo")
	c := Key("fuel shortage in galle")

	if a != b {
		t.Error("same text produced different keys")
	}
	if a == c {
		t.Error("different text produced the same key")
	}
	if !strings.HasPrefix(a, "signalengine:v1:") {
		t.Errorf("key %q missing version prefix", a)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() found a key that was never set")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok := c.Get("k")
	if !ok || string(got) != "v" {
		t.Errorf("Get() = %q, %v; want v, true", got, ok)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("Get() found a deleted key")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set(Key("some text"), []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// A fresh instance over the same directory sees the entry.
	c2 := NewDiskCache(dir, time.Minute)
	got, ok := c2.Get(Key("some text"))
	if !ok || string(got) != "payload" {
		t.Errorf("Get() = %q, %v; want payload, true", got, ok)
	}

	if err := c2.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := c2.Get(Key("some text")); ok {
		t.Error("Get() found an entry after Clear()")
	}
}

func TestLayeredCachePromotion(t *testing.T) {
	dir := t.TempDir()

	// Warm the disk layer only.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}

	c := NewLayeredCache(time.Minute, dir, time.Minute)
	got, ok := c.Get("k")
	if !ok || string(got) != "v" {
		t.Fatalf("Get() = %q, %v; want disk hit", got, ok)
	}

	// The disk entry is now promoted; removing the file must not lose it.
	if err := disk.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("k"); !ok {
		t.Error("Get() missed after promotion to the memory layer")
	}
}
