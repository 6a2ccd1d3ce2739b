package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"hubmark/internal/domain/entity"
	"hubmark/internal/domain/service"
)

// maxCASRetries bounds the optimistic-transaction retry loop. Contention on
// a single user's bookmarks is rare, so hitting this limit indicates a
// pathological caller rather than normal load.
const maxCASRetries = 16

// redisCache is the shared backend. Collections are stored as JSON lists
// under one key per user; write atomicity comes from WATCH-based
// compare-and-swap transactions rather than a process-local lock, so the
// per-key serialization holds across replicas too.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a redis-backed bookmark cache around an existing
// client. The TTL is applied on every write via SET, giving the sliding
// window; GET on the read path never refreshes it.
func NewRedisCache(client *redis.Client, ttl time.Duration) service.BookmarkCache {
	return &redisCache{client: client, ttl: ttl}
}

func bookmarkKey(userID int64) string {
	return "bookmarks:" + strconv.FormatInt(userID, 10)
}

// Fetch returns the user's collection; a missing key reads as empty.
func (c *redisCache) Fetch(ctx context.Context, userID int64) ([]entity.Bookmark, error) {
	raw, err := c.client.Get(ctx, bookmarkKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.Bookmark{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bookmarks from redis")
	}

	return decodeBookmarks(raw)
}

// Mutate runs fn inside a WATCH transaction on the user's key. If another
// writer races in between the read and the write, the transaction fails and
// the whole cycle retries with the fresh value, so no update is ever lost.
// fn's own errors abort the transaction without writing and are returned
// unchanged.
func (c *redisCache) Mutate(ctx context.Context, userID int64, fn service.MutateFunc) ([]entity.Bookmark, error) {
	key := bookmarkKey(userID)

	var result []entity.Bookmark
	for attempt := 0; attempt < maxCASRetries; attempt++ {
		err := c.client.Watch(ctx, func(tx *redis.Tx) error {
			current := []entity.Bookmark{}

			raw, err := tx.Get(ctx, key).Bytes()
			if err != nil && !errors.Is(err, redis.Nil) {
				return errors.Wrap(err, "failed to read bookmarks from redis")
			}
			if err == nil {
				if current, err = decodeBookmarks(raw); err != nil {
					return err
				}
			}

			next, err := fn(current)
			if err != nil {
				return err
			}

			payload, err := json.Marshal(next)
			if err != nil {
				return errors.Wrap(err, "failed to encode bookmarks")
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				// SET with TTL restarts the expiry window on every write.
				pipe.Set(ctx, key, payload, c.ttl)

				return nil
			})
			if err != nil {
				return errors.Wrap(err, "failed to write bookmarks to redis")
			}

			result = next

			return nil
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race; retry against the new value.
			continue
		}
		if err != nil {
			return nil, err
		}

		return result, nil
	}

	return nil, errors.New("bookmark cache: too many concurrent updates for key " + key)
}

func decodeBookmarks(raw []byte) ([]entity.Bookmark, error) {
	var bookmarks []entity.Bookmark
	if err := json.Unmarshal(raw, &bookmarks); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached bookmarks")
	}
	if bookmarks == nil {
		bookmarks = []entity.Bookmark{}
	}

	return bookmarks, nil
}
