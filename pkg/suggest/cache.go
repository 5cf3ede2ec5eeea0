package suggest

import (
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// HotCache remembers the completions of recently asked prefixes.
type HotCache struct {
	entries *lru.Cache[string, []Suggestion]
	maxSize int
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewHotCache creates a cache for up to maxSize prefixes. A size below one
// disables caching.
func NewHotCache(maxSize int) *HotCache {
	hc := &HotCache{maxSize: maxSize}
	if maxSize > 0 {
		// lru.New only fails for non-positive sizes.
		hc.entries, _ = lru.New[string, []Suggestion](maxSize)
	}
	return hc
}

func cacheKey(lowerPrefix string, limit int) string {
	return lowerPrefix + "\x00" + strconv.Itoa(limit)
}

// Get returns the cached completions of lowerPrefix for limit.
func (hc *HotCache) Get(lowerPrefix string, limit int) ([]Suggestion, bool) {
	if hc.entries == nil {
		return nil, false
	}
	found, ok := hc.entries.Get(cacheKey(lowerPrefix, limit))
	if ok {
		hc.hits.Add(1)
	} else {
		hc.misses.Add(1)
	}
	return found, ok
}

func (hc *HotCache) Put(lowerPrefix string, limit int, found []Suggestion) {
	if hc.entries == nil {
		return
	}
	hc.entries.Add(cacheKey(lowerPrefix, limit), found)
}

// Purge drops every cached prefix.
func (hc *HotCache) Purge() {
	if hc.entries != nil {
		hc.entries.Purge()
	}
}

func (hc *HotCache) Stats() map[string]int {
	size := 0
	if hc.entries != nil {
		size = hc.entries.Len()
	}
	return map[string]int{
		"hotCachePrefixes": size,
		"maxHotPrefixes":   hc.maxSize,
		"hotCacheHits":     int(hc.hits.Load()),
		"hotCacheMisses":   int(hc.misses.Load()),
	}
}
