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

// searchService implements the SearchUsecase interface by delegating to the
// upstream repository searcher.
type searchService struct {
	searcher service.RepositorySearcher
	logger   *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Searcher service.RepositorySearcher
	Logger   *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		searcher: params.Searcher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search proxies the keyword search upstream. An upstream failure comes back
// as the upstream error kind and is reported as such, never as a crash of
// the request pipeline.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) ([]entity.Bookmark, error) {
	keyword := strings.TrimSpace(input.Keyword)
	if keyword == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "search keyword is required")
	}

	repos, err := srv.searcher.Search(ctx, keyword, input.Page, input.PerPage)
	if err != nil {
		srv.log(ctx).Warn("Repository search failed", slog.String("keyword", keyword), slog.Any("error", err))

		return nil, errors.Wrap(err, "repository search failed")
	}

	return repos, nil
}
