package service

import (
	"context"

	"hubmark/internal/domain/entity"
)

// RepositorySearcher searches a third-party repository index by keyword.
// This core only consumes the result shape; transport details live in infra.
type RepositorySearcher interface {
	// Search returns up to perPage repositories matching the keyword,
	// ordered by relevance (stars, descending). A transport or upstream
	// failure surfaces as an upstream error, never a panic.
	Search(ctx context.Context, keyword string, page, perPage int) ([]entity.Bookmark, error)
}
