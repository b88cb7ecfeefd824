package inkwell

import (
	"sync"
	"time"
)

// ListCache is an in-memory cache of the aggregated, date-sorted listing
// with TTL. Detail lookups bypass it and hit the Library directly, so a
// fresh upsert is visible immediately even before invalidation.
type ListCache struct {
	mu      sync.RWMutex
	posts   []PostRecord
	fetched time.Time
	ttl     time.Duration
	library *Library
}

// NewListCache creates a ListCache backed by the given Library.
func NewListCache(l *Library, ttl time.Duration) *ListCache {
	return &ListCache{library: l, ttl: ttl}
}

func (c *ListCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ListCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ListAll returns the pooled listing, refreshing from the Library when the
// cached copy has expired. It tries a read lock first; only takes a write
// lock if a reload is needed.
func (c *ListCache) ListAll() ([]PostRecord, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.library.ListAll()
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.fetched = time.Now()
	return posts, nil
}

// TopN returns the first n posts of the cached listing. A non-positive n
// yields an empty listing.
func (c *ListCache) TopN(n int) ([]PostRecord, error) {
	posts, err := c.ListAll()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	if n < len(posts) {
		posts = posts[:n]
	}
	return posts, nil
}
