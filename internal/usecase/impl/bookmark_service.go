package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "hubmark/internal/delivery/context"
	"hubmark/internal/domain/entity"
	domainerrors "hubmark/internal/domain/errors"
	"hubmark/internal/domain/service"
	"hubmark/internal/usecase"
)

// errCollectionUnchanged aborts a cache mutation that would rewrite the
// collection with identical content. The write (and therefore the TTL reset)
// only happens when something actually changed.
var errCollectionUnchanged = errors.New("bookmark collection unchanged")

// bookmarkService implements the BookmarkUsecase interface on top of the
// keyed bookmark cache. All read-modify-write cycles go through the cache's
// Mutate so concurrent requests for the same user never lose an update.
type bookmarkService struct {
	cache  service.BookmarkCache
	logger *slog.Logger
}

// BookmarkServiceParams holds dependencies for bookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	Cache  service.BookmarkCache
	Logger *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		cache:  params.Cache,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's collection. Reads never extend the retention window.
func (srv *bookmarkService) List(ctx context.Context, userID int64) ([]entity.Bookmark, error) {
	bookmarks, err := srv.cache.Fetch(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// Add appends the bookmark to the user's collection. Adding a name that is
// already present (exact match) is a no-op: the collection is returned as-is
// and, since nothing is written, the TTL window is not reset.
func (srv *bookmarkService) Add(ctx context.Context, userID int64, input *usecase.AddBookmarkInput) ([]entity.Bookmark, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "bookmark name must not be blank")
	}

	bookmark := entity.Bookmark{Name: input.Name, AvatarURL: input.AvatarURL}

	updated, err := srv.cache.Mutate(ctx, userID, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		for _, existing := range current {
			if existing.Name == bookmark.Name {
				return nil, errCollectionUnchanged
			}
		}

		return append(current, bookmark), nil
	})

	if errors.Is(err, errCollectionUnchanged) {
		srv.log(ctx).Debug("Bookmark already present, add is a no-op",
			slog.Int64("userID", userID), slog.String("name", bookmark.Name))

		return srv.cache.Fetch(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to add bookmark")
	}

	srv.log(ctx).Debug("Bookmark added", slog.Int64("userID", userID), slog.String("name", bookmark.Name))

	return updated, nil
}

// Remove deletes every bookmark whose name matches case-insensitively. The
// add path prevents duplicates, but the cache can outlive a deploy that
// changed the rules, so removal still sweeps all matches and decides
// not-found by the removed count.
func (srv *bookmarkService) Remove(ctx context.Context, userID int64, name string) ([]entity.Bookmark, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "bookmark name must not be blank")
	}

	updated, err := srv.cache.Mutate(ctx, userID, func(current []entity.Bookmark) ([]entity.Bookmark, error) {
		remaining := make([]entity.Bookmark, 0, len(current))
		for _, existing := range current {
			if !strings.EqualFold(existing.Name, name) {
				remaining = append(remaining, existing)
			}
		}

		if len(remaining) == len(current) {
			// Nothing removed: fail without writing, leaving the TTL alone.
			return nil, errors.Wrap(domainerrors.ErrBookmarkNotFound, "no bookmark matched "+name)
		}

		return remaining, nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Bookmark removed", slog.Int64("userID", userID), slog.String("name", name))

	return updated, nil
}
