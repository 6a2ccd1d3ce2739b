package handler

import (
	"log/slog"
	"net/http"

	"hubmark/internal/delivery/http/response"
	domainerrors "hubmark/internal/domain/errors"
	"hubmark/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the repository search handler.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search proxies a keyword search to the upstream repository index.
func (h *SearchHandler) Search(c echo.Context) error {
	var input usecase.SearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid search input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid search input")
	}

	results, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "")
}
