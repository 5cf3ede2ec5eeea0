package dictionary

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of word lists a Cached source keeps.
const DefaultCacheSize = 512

// Cached remembers the lists returned by another source, keyed by file path.
// Missing lists and failures are not cached, so they are retried.
type Cached struct {
	inner Source
	cache *lru.Cache[string, []string]
}

func NewCached(inner Source, size int) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, []string](size)
	return &Cached{inner: inner, cache: cache}
}

func (c *Cached) Words(ctx context.Context, q Query) ([]string, error) {
	key := q.Path()
	if list, ok := c.cache.Get(key); ok {
		return list, nil
	}
	list, err := c.inner.Words(ctx, q)
	if err != nil || list == nil {
		return list, err
	}
	c.cache.Add(key, list)
	return list, nil
}

// Has reports whether q's list is cached.
func (c *Cached) Has(q Query) bool {
	return c.cache.Contains(q.Path())
}

// Purge empties the cache.
func (c *Cached) Purge() {
	c.cache.Purge()
}

func (c *Cached) Len() int {
	return c.cache.Len()
}
