package cache

import (
	"context"
	"testing"
	"time"

	"hubmark/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *redisCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisCache(client, ttl).(*redisCache)
}

func TestRedisCache_FetchMissing(t *testing.T) {
	_, c := newTestRedisCache(t, time.Hour)

	bookmarks, err := c.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
	assert.NotNil(t, bookmarks)
}

func TestRedisCache_MutateStoresAndFetchReads(t *testing.T) {
	_, c := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	stored, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		assert.Empty(t, current)
		return append(current, entity.Bookmark{Name: "cli/cli", AvatarURL: "https://example.com/a.png"}), nil
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, stored, bookmarks)
}

func TestRedisCache_MutateErrorWritesNothing(t *testing.T) {
	mr, c := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "cli/cli"}), nil
	})
	require.NoError(t, err)
	before := mr.TTL(bookmarkKey(1))

	failure := errors.New("nothing to do")
	result, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return nil, failure
	})
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, result)

	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)

	// The failed mutation must not have touched the expiry either.
	assert.Equal(t, before, mr.TTL(bookmarkKey(1)))
}

func TestRedisCache_WriteSetsSlidingTTL(t *testing.T) {
	mr, c := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "cli/cli"}), nil
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL(bookmarkKey(1)))

	// Let some of the window elapse, then write again: the TTL restarts.
	mr.FastForward(30 * time.Minute)
	_, err = c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "golang/go"}), nil
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL(bookmarkKey(1)))
}

func TestRedisCache_FetchDoesNotExtendTTL(t *testing.T) {
	mr, c := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "cli/cli"}), nil
	})
	require.NoError(t, err)

	mr.FastForward(30 * time.Minute)
	_, err = c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, mr.TTL(bookmarkKey(1)))

	// Past the window the collection reads as empty again.
	mr.FastForward(31 * time.Minute)
	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestRedisCache_MutatePreservesOrder(t *testing.T) {
	_, c := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	names := []string{"cli/cli", "golang/go", "labstack/echo"}
	for _, name := range names {
		_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
			return append(current, entity.Bookmark{Name: name}), nil
		})
		require.NoError(t, err)
	}

	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookmarks, 3)
	for i, name := range names {
		assert.Equal(t, name, bookmarks[i].Name)
	}
}
