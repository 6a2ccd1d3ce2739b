package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"

	"hubmark/internal/domain/entity"
	domainerrors "hubmark/internal/domain/errors"
	"hubmark/internal/domain/service"
	mockSvc "hubmark/internal/mocks/service"
	"hubmark/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookmarkServiceFixtures holds all test dependencies for bookmark service
// tests. The mock cache is backed by an in-memory collection so the mutate
// functions the service hands it actually run; writes counts successful
// stores, which is what would reset the retention window in a real backend.
type bookmarkServiceFixtures struct {
	service usecase.BookmarkUsecase
	cache   *mockSvc.MockBookmarkCache
	state   []entity.Bookmark
	writes  int
}

func createTestBookmarkService(t *testing.T) *bookmarkServiceFixtures {
	cache := mockSvc.NewMockBookmarkCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := &bookmarkServiceFixtures{
		cache: cache,
		state: []entity.Bookmark{},
	}
	fx.service = NewBookmarkService(BookmarkServiceParams{Cache: cache, Logger: logger})

	cache.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, _ int64) ([]entity.Bookmark, error) {
			return slices.Clone(fx.state), nil
		}).
		Maybe()

	cache.EXPECT().
		Mutate(mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("service.MutateFunc")).
		RunAndReturn(func(_ context.Context, _ int64, fn service.MutateFunc) ([]entity.Bookmark, error) {
			next, err := fn(slices.Clone(fx.state))
			if err != nil {
				return nil, err
			}
			fx.state = next
			fx.writes++

			return slices.Clone(next), nil
		}).
		Maybe()

	return fx
}

func TestBookmarkService_List_Empty(t *testing.T) {
	fx := createTestBookmarkService(t)

	bookmarks, err := fx.service.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestBookmarkService_Add_AppendsInOrder(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	first, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "cli/cli", AvatarURL: "https://example.com/a.png"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "golang/go"})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "cli/cli", second[0].Name)
	assert.Equal(t, "golang/go", second[1].Name)
}

func TestBookmarkService_Add_DuplicateIsNoOp(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "cli/cli", AvatarURL: "https://example.com/a.png"})
	require.NoError(t, err)
	writesBefore := fx.writes

	// Same exact name again: no error, collection unchanged, and crucially
	// no write happened so the retention window was not reset.
	bookmarks, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "cli/cli", AvatarURL: "https://example.com/other.png"})
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "https://example.com/a.png", bookmarks[0].AvatarURL)
	assert.Equal(t, writesBefore, fx.writes)
}

func TestBookmarkService_Add_CaseDifferentNamesCoexist(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "Tetris"})
	require.NoError(t, err)

	// Insert comparison is exact, so a case variant is a distinct bookmark.
	bookmarks, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "tetris"})
	require.NoError(t, err)
	assert.Len(t, bookmarks, 2)
}

func TestBookmarkService_Add_BlankName(t *testing.T) {
	fx := createTestBookmarkService(t)

	bookmarks, err := fx.service.Add(context.Background(), 1, &usecase.AddBookmarkInput{Name: "   "})
	assert.Nil(t, bookmarks)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, fx.writes)
}

func TestBookmarkService_Remove_SweepsCaseInsensitively(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	for _, name := range []string{"Tetris", "tetris", "golang/go"} {
		_, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: name})
		require.NoError(t, err)
	}

	// One removal takes out every case variant in a single sweep.
	bookmarks, err := fx.service.Remove(ctx, 1, "TETRIS")
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "golang/go", bookmarks[0].Name)
}

func TestBookmarkService_Remove_NotFound(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "cli/cli"})
	require.NoError(t, err)
	writesBefore := fx.writes

	bookmarks, err := fx.service.Remove(ctx, 1, "golang/go")
	assert.Nil(t, bookmarks)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkNotFound)

	// The failed removal wrote nothing.
	assert.Equal(t, writesBefore, fx.writes)
	assert.Len(t, fx.state, 1)
}

func TestBookmarkService_Remove_EmptyCollection(t *testing.T) {
	fx := createTestBookmarkService(t)

	bookmarks, err := fx.service.Remove(context.Background(), 1, "cli/cli")
	assert.Nil(t, bookmarks)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkNotFound)
}

func TestBookmarkService_Remove_BlankName(t *testing.T) {
	fx := createTestBookmarkService(t)

	bookmarks, err := fx.service.Remove(context.Background(), 1, "  ")
	assert.Nil(t, bookmarks)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookmarkService_Remove_CanEmptyCollection(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, 1, &usecase.AddBookmarkInput{Name: "cli/cli"})
	require.NoError(t, err)

	bookmarks, err := fx.service.Remove(ctx, 1, "cli/cli")
	require.NoError(t, err)
	assert.Empty(t, bookmarks)

	// The now-empty collection is still a stored entry, not a deletion.
	listed, err := fx.service.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
