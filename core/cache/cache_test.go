package cache

import (
	"testing"
	"time"
)

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nonexistent-key-xyz"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	c.Set("ttl", "v", time.Minute, nil)

	if _, ok := c.Get("ttl"); !ok {
		t.Fatal("Get before expiry: want true")
	}
	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("ttl"); ok {
		t.Error("Get after expiry: want false")
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	if got := c.GetOrDefault("k", "default"); got != "default" {
		t.Errorf("GetOrDefault missing = %v, want default", got)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", "default"); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestSetN_GetN(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"dragon", "fantasy"}, "composite-val", 0, nil)
	got, ok := c.GetN("dragon", "fantasy")
	if !ok || got != "composite-val" {
		t.Errorf("GetN = %v, %v; want composite-val, true", got, ok)
	}
	if _, ok := c.GetN("dragon", "all"); ok {
		t.Error("GetN different composite: want false")
	}
}

func TestTagKey_DeleteByTag(t *testing.T) {
	c := NewCache()
	c.Set("k1", "v1", 0, []string{"catalog"})
	c.Set("k2", "v2", 0, []string{"catalog"})
	c.Set("k3", "v3", 0, nil)

	if keys := c.GetKeysByTag("catalog"); len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}

	c.DeleteByTag("catalog")
	if _, ok := c.Get("k1"); ok {
		t.Error("DeleteByTag: k1 should be gone")
	}
	if _, ok := c.Get("k2"); ok {
		t.Error("DeleteByTag: k2 should be gone")
	}
	if _, ok := c.Get("k3"); !ok {
		t.Error("DeleteByTag: untagged k3 should remain")
	}
}

func TestDelete_RemovesFromTagIndex(t *testing.T) {
	c := NewCache()
	c.Set("del-tag-key", "v", 0, []string{"t2"})
	c.Delete("del-tag-key")
	if keys := c.GetKeysByTag("t2"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %d keys, want 0", len(keys))
	}
}
