// Package cache provides the bookmark cache backends. Both implementations
// honor the same contract: per-key serialized writes, a sliding TTL that
// resets on write only, and expired entries reading as empty.
package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hubmark/internal/domain/entity"
	"hubmark/internal/domain/service"
)

// memoryCache is the in-process backend: an expirable LRU for storage plus a
// keyed mutex so read-modify-write cycles for the same user never interleave.
type memoryCache struct {
	entries *expirable.LRU[int64, []entity.Bookmark]
	locks   keyedMutex
}

// NewMemoryCache builds an in-process bookmark cache. Entries expire ttl
// after their last write; maxEntries bounds memory by evicting the least
// recently used collection.
func NewMemoryCache(maxEntries int, ttl time.Duration) service.BookmarkCache {
	return &memoryCache{
		entries: expirable.NewLRU[int64, []entity.Bookmark](maxEntries, nil, ttl),
	}
}

// Fetch returns the user's collection, or an empty slice when the entry is
// absent or expired. Reads never touch the TTL.
func (c *memoryCache) Fetch(_ context.Context, userID int64) ([]entity.Bookmark, error) {
	current, ok := c.entries.Get(userID)
	if !ok {
		return []entity.Bookmark{}, nil
	}

	// Copy so callers can't mutate the cached slice.
	return slices.Clone(current), nil
}

// Mutate applies fn under the user's lock and stores the result, resetting
// the TTL. If fn fails nothing is written.
func (c *memoryCache) Mutate(_ context.Context, userID int64, fn service.MutateFunc) ([]entity.Bookmark, error) {
	lock := c.locks.lock(userID)
	defer lock.Unlock()

	current, ok := c.entries.Get(userID)
	if !ok {
		current = []entity.Bookmark{}
	}

	next, err := fn(slices.Clone(current))
	if err != nil {
		return nil, err
	}

	// Add re-inserts the entry, which restarts its expiry window.
	c.entries.Add(userID, next)

	return slices.Clone(next), nil
}

// keyedMutex hands out one mutex per user ID. The map grows with the set of
// distinct users seen, which is bounded by the same population as the LRU.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// lock returns the mutex for the given key, locked.
func (k *keyedMutex) lock(id int64) *sync.Mutex {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[int64]*sync.Mutex)
	}
	lock, ok := k.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[id] = lock
	}
	k.mu.Unlock()

	lock.Lock()

	return lock
}
