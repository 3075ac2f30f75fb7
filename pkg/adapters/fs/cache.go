package fs

import (
	"sync"
	"time"

	"github.com/aretw0/multilan/pkg/adapters/format"
)

// cacheEntry is a decoded catalog file and the stat data it was decoded from.
type cacheEntry struct {
	Payload      format.Payload
	LastModified time.Time
	Size         int64
}

// cache keeps decoded payloads between reloads so unchanged pages are not
// parsed again. It lives in memory only.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry // key is the file path
	hits    int
	misses  int
}

func newCache() *cache {
	return &cache{entries: make(map[string]*cacheEntry)}
}

// Get retrieves an entry if it exists and is fresh.
func (c *cache) Get(path string, mtime time.Time, size int64) (format.Payload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok || !entry.LastModified.Equal(mtime) || entry.Size != size {
		c.misses++
		return format.Payload{}, false
	}
	c.hits++
	return entry.Payload, true
}

// Set updates an entry in the cache.
func (c *cache) Set(path string, entry *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry
}

// Prune removes entries that are not in the keep set.
func (c *cache) Prune(keep []string) {
	set := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		set[k] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for path := range c.entries {
		if _, ok := set[path]; !ok {
			delete(c.entries, path)
		}
	}
}

// Len returns the number of entries in the cache.
func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
