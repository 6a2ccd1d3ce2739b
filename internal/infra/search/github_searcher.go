// Package search implements the outbound repository search client against
// the GitHub REST API.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"hubmark/config"
	"hubmark/internal/domain/entity"
	domainerrors "hubmark/internal/domain/errors"
	"hubmark/internal/domain/service"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// githubSearcher calls GitHub's repository search endpoint and reshapes the
// hits into the name + avatar pairs the rest of the system consumes.
type githubSearcher struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewGitHubSearcher is the constructor for githubSearcher.
func NewGitHubSearcher(cfg *config.Config, logger *slog.Logger) service.RepositorySearcher {
	return &githubSearcher{
		baseURL:   strings.TrimRight(cfg.GitHub.BaseURL, "/"),
		userAgent: cfg.GitHub.UserAgent,
		client:    &http.Client{Timeout: cfg.GitHub.Timeout},
		logger:    logger,
	}
}

// searchResponse mirrors the subset of GitHub's search payload we consume.
type searchResponse struct {
	TotalCount        int              `json:"total_count"`
	IncompleteResults bool             `json:"incomplete_results"`
	Items             []repositoryItem `json:"items"`
}

type repositoryItem struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

// Search queries repositories by name, most-starred first. Any transport or
// upstream failure maps to the upstream error kind; it never panics and never
// exposes GitHub's raw response to the caller.
func (s *githubSearcher) Search(ctx context.Context, keyword string, page, perPage int) ([]entity.Bookmark, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "search keyword must not be empty")
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	query := url.Values{}
	query.Set("q", keyword+" in:name")
	query.Set("page", fmt.Sprint(page))
	query.Set("per_page", fmt.Sprint(perPage))
	query.Set("sort", "stars")
	query.Set("order", "desc")

	endpoint := s.baseURL + "/search/repositories?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build search request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("GitHub search request failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailed.WrapMessage("search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Log the upstream detail, surface only the generic upstream failure.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.Warn("GitHub search returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, domainerrors.ErrUpstreamFailed.WrapMessage(
			fmt.Sprintf("search upstream returned status %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WrapMessage("failed to decode search response")
	}

	repos := make([]entity.Bookmark, 0, len(result.Items))
	for _, item := range result.Items {
		repos = append(repos, entity.Bookmark{
			Name:      item.Name,
			AvatarURL: item.Owner.AvatarURL,
		})
	}

	return repos, nil
}
