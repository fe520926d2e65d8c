package deletes

import (
	"fmt"

	"github.com/docker/docker/pkg/locker"
	"github.com/go-sif/lazyrow/logging"
	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"
)

// FilterLoader builds the EqualityDeleteFilter for a set of delete files
type FilterLoader func() (*EqualityDeleteFilter, error)

// FilterCache is an LRU cache of EqualityDeleteFilters, keyed by an identifier for the
// delete files they were built from. Concurrent requests for the same key load it once.
type FilterCache struct {
	cache  *lru.Cache
	locks  *locker.Locker
	logger zerolog.Logger
}

// CreateFilterCache creates a FilterCache holding at most size filters
func CreateFilterCache(size int) (*FilterCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("unable to create filter cache: %w", err)
	}
	return &FilterCache{
		cache:  cache,
		locks:  locker.New(),
		logger: logging.NewLogger(),
	}, nil
}

// Get returns the cached filter for key, loading and caching it if it is absent.
// A failed load is not cached.
func (c *FilterCache) Get(key string, load FilterLoader) (*EqualityDeleteFilter, error) {
	if f, ok := c.cache.Get(key); ok {
		return f.(*EqualityDeleteFilter), nil
	}
	c.locks.Lock(key)
	defer c.locks.Unlock(key)
	// another goroutine may have loaded it while we waited
	if f, ok := c.cache.Get(key); ok {
		return f.(*EqualityDeleteFilter), nil
	}
	f, err := load()
	if err != nil {
		return nil, fmt.Errorf("unable to load delete filter %s: %w", key, err)
	}
	if evicted := c.cache.Add(key, f); evicted {
		c.logger.Debug().Str("key", key).Msg("evicted delete filter from cache")
	}
	c.logger.Debug().Str("key", key).Int("keys", f.Len()).Msg("loaded delete filter")
	return f, nil
}

// Len returns the number of filters currently cached
func (c *FilterCache) Len() int {
	return c.cache.Len()
}

// Purge removes every filter from the cache
func (c *FilterCache) Purge() {
	c.cache.Purge()
}
