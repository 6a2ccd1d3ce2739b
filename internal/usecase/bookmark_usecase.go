// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hubmark/internal/domain/entity"
)

// AddBookmarkInput is the payload for pinning a repository.
type AddBookmarkInput struct {
	Name      string `json:"name" validate:"required"`
	AvatarURL string `json:"avatar_url"`
}

// BookmarkUsecase defines the interface for bookmark collection operations.
// All operations return the user's full collection in insertion order.
type BookmarkUsecase interface {
	// List returns the current collection; empty when absent or expired.
	List(ctx context.Context, userID int64) ([]entity.Bookmark, error)

	// Add appends the bookmark unless one with the exact same name already
	// exists, in which case the call is a no-op. Blank names are rejected.
	Add(ctx context.Context, userID int64, input *AddBookmarkInput) ([]entity.Bookmark, error)

	// Remove deletes every bookmark whose name matches case-insensitively
	// and returns the remainder. Fails with not-found when nothing matched.
	Remove(ctx context.Context, userID int64, name string) ([]entity.Bookmark, error)
}
