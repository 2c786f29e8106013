package common

import "testing"

func setupTestCache(t *testing.T) (*Cache, func()) {
	t.Helper()

	cache := NewCache()

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_SetGet(t *testing.T) {
	cache, cleanup := setupTestCache(t)
	defer cleanup()

	cache.Set(CacheKeyPublication("p_1"), "value")

	if _, ok := cache.Get(CacheKeyPublication("p_1")); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_Delete(t *testing.T) {
	cache, cleanup := setupTestCache(t)
	defer cleanup()

	cache.Set(CacheKeyCategory("c_1"), "value")
	cache.Delete(CacheKeyCategory("c_1"))

	if _, ok := cache.Get(CacheKeyCategory("c_1")); ok {
		t.Error("expected key to be deleted")
	}
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestCache(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Flush()

	if _, ok := cache.Get("key"); ok {
		t.Error("expected cache to be flushed")
	}
}
