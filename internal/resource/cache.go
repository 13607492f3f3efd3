package resource

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	cacheTTL        = 30 * time.Second
	cleanupInterval = time.Minute
)

// Cache is a short-lived read cache for resource responses. Writes
// through the fallback sources invalidate the touched entity key and
// the matching list tag so the next read refetches.
type Cache struct {
	c *gocache.Cache
}

// NewCache creates a cache with the default TTL.
func NewCache() *Cache {
	return &Cache{c: gocache.New(cacheTTL, cleanupInterval)}
}

func (c *Cache) get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.c.Get(key)
}

func (c *Cache) set(key string, v any) {
	if c == nil {
		return
	}
	c.c.Set(key, v, gocache.DefaultExpiration)
}

func (c *Cache) invalidate(keys ...string) {
	if c == nil {
		return
	}
	for _, key := range keys {
		c.c.Delete(key)
	}
}

func projectListKey() string            { return "projects" }
func projectKey(id string) string       { return "project:" + id }
func fieldListKey() string              { return "fields" }
func documentListKey(pid string) string { return "documents:" + pid }
func documentKey(pid, id string) string { return "document:" + pid + ":" + id }
