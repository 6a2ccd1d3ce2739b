// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hubmark/internal/domain/entity"
)

// SearchInput defines a repository search request.
type SearchInput struct {
	Keyword string `query:"keyword" validate:"required"`
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
}

// SearchUsecase defines the interface for the repository search operation.
type SearchUsecase interface {
	// Search proxies the keyword search to the upstream index. Upstream
	// failures surface as the upstream error kind, never as a crash.
	Search(ctx context.Context, input *SearchInput) ([]entity.Bookmark, error)
}
