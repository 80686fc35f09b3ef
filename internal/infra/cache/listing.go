package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"example.com/musicstore/internal/domain/catalog"
)

// ListingCache holds computed album listings for a validity window.
// Concurrent misses for the same key coordinate through a singleflight
// group, so at most one recomputation is in flight per key.
type ListingCache struct {
	lru   *expirable.LRU[string, []*catalog.Album]
	group singleflight.Group
}

func NewListingCache(ttl time.Duration) *ListingCache {
	return &ListingCache{
		lru: expirable.NewLRU[string, []*catalog.Album](16, nil, ttl),
	}
}

// GetOrCompute returns the cached listing for key, computing and storing it
// on a miss. The second return reports whether the value came from the
// cache; callers that merely waited on another caller's computation count as
// misses.
func (c *ListingCache) GetOrCompute(key string, compute func() ([]*catalog.Album, error)) ([]*catalog.Album, bool, error) {
	if albums, ok := c.lru.Get(key); ok {
		return albums, true, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Another caller may have filled the entry while we queued.
		if albums, ok := c.lru.Get(key); ok {
			return albums, nil
		}
		albums, err := compute()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, albums)
		return albums, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.([]*catalog.Album), false, nil
}

func (c *ListingCache) Invalidate(key string) {
	c.lru.Remove(key)
}
