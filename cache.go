package scholarpage

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// CachedPage is one rendered response body with its validator.
type CachedPage struct {
	Body    []byte
	ETag    string
	fetched time.Time
}

// PageCache is an in-memory cache of rendered pages keyed by page state,
// with TTL and a bounded entry count.
type PageCache struct {
	mu      sync.RWMutex
	entries map[string]CachedPage
	ttl     time.Duration
	max     int
	now     func() time.Time
}

// NewPageCache creates a PageCache holding at most max entries for ttl each.
func NewPageCache(ttl time.Duration, max int) *PageCache {
	if max < 1 {
		max = 1
	}
	return &PageCache{
		entries: make(map[string]CachedPage),
		ttl:     ttl,
		max:     max,
		now:     time.Now,
	}
}

func (c *PageCache) valid(p CachedPage) bool {
	return c.now().Sub(p.fetched) < c.ttl
}

// Len returns the number of stored entries, expired ones included.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the page stored under key, calling load to render it when it
// is missing or stale. hit reports whether the stored copy was used.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PageCache) Get(key string, load func() ([]byte, error)) (page CachedPage, hit bool, err error) {
	c.mu.RLock()
	if p, ok := c.entries[key]; ok && c.valid(p) {
		c.mu.RUnlock()
		return p, true, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[key]; ok && c.valid(p) {
		return p, true, nil
	}

	body, err := load()
	if err != nil {
		return CachedPage{}, false, err
	}
	p := CachedPage{Body: body, ETag: etag(body), fetched: c.now()}
	c.makeRoom()
	c.entries[key] = p
	return p, false, nil
}

// makeRoom drops expired entries once the cache is full, and everything if
// that is not enough. Callers hold the write lock.
func (c *PageCache) makeRoom() {
	if len(c.entries) < c.max {
		return
	}
	for k, p := range c.entries {
		if !c.valid(p) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= c.max {
		c.entries = make(map[string]CachedPage)
	}
}

// etag is weak: the same tag covers the identity and gzip encodings.
func etag(body []byte) string {
	sum := sha256.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:16]) + `"`
}
