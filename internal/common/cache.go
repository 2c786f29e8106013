package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache wraps go-cache as the in-memory backing store for the domain
// registries. Entries never expire unless an expiration is passed explicitly.
type Cache struct {
	*cache.Cache
}

func NewCache() *Cache {
	return &Cache{cache.New(cache.NoExpiration, 0)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.NoExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

func (c *Cache) Delete(key string) {
	c.Cache.Delete(key)
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

func CacheKeyPublication(id string) string {
	return "publication:" + id
}

func CacheKeyCategory(id string) string {
	return "category:" + id
}
