package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"hubmark/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_FetchMissing(t *testing.T) {
	c := NewMemoryCache(16, time.Hour)

	bookmarks, err := c.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
	assert.NotNil(t, bookmarks)
}

func TestMemoryCache_MutateStoresAndFetchReads(t *testing.T) {
	c := NewMemoryCache(16, time.Hour)
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

	// Other keys are unaffected.
	other, err := c.Fetch(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryCache_MutateErrorWritesNothing(t *testing.T) {
	c := NewMemoryCache(16, time.Hour)
	ctx := context.Background()

	_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "cli/cli"}), nil
	})
	require.NoError(t, err)

	failure := errors.New("nothing to do")
	result, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return nil, failure
	})
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, result)

	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)
}

func TestMemoryCache_FetchReturnsCopy(t *testing.T) {
	c := NewMemoryCache(16, time.Hour)
	ctx := context.Background()

	_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "cli/cli"}), nil
	})
	require.NoError(t, err)

	first, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cli/cli", second[0].Name)
}

func TestMemoryCache_ConcurrentMutatesLoseNoUpdate(t *testing.T) {
	c := NewMemoryCache(16, time.Hour)
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		name := string(rune('a' + i%26)) + "/" + string(rune('a'+i))
		go func(name string) {
			defer wg.Done()
			_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
				return append(current, entity.Bookmark{Name: name}), nil
			})
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()

	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bookmarks, writers)
}

func TestMemoryCache_EntriesExpire(t *testing.T) {
	c := NewMemoryCache(16, 50*time.Millisecond)
	ctx := context.Background()

	_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "cli/cli"}), nil
	})
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestMemoryCache_WriteResetsWindow(t *testing.T) {
	c := NewMemoryCache(16, 150*time.Millisecond)
	ctx := context.Background()

	_, err := c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		return append(current, entity.Bookmark{Name: "cli/cli"}), nil
	})
	require.NoError(t, err)

	// Keep writing inside the window; the entry must outlive the original TTL.
	for i := 0; i < 3; i++ {
		time.Sleep(80 * time.Millisecond)
		_, err = c.Mutate(ctx, 1, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
			return current, nil
		})
		require.NoError(t, err)
	}

	bookmarks, err := c.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)
}
