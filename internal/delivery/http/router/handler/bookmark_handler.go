package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hubmark/internal/delivery/http/response"
	domainerrors "hubmark/internal/domain/errors"
	"hubmark/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookmarkHandler holds dependencies for bookmark collection handlers.
type BookmarkHandler struct {
	uc     usecase.BookmarkUsecase
	logger *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler, injected by Fx.
func NewBookmarkHandler(uc usecase.BookmarkUsecase, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		uc:     uc,
		logger: logger,
	}
}

// userIDParam parses the :userId path parameter.
func userIDParam(c echo.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("userId must be an integer"), "invalid user id")
	}

	return userID, nil
}

// List returns the user's bookmark collection.
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookmarks, "")
}

// Add pins a repository to the user's collection.
func (h *BookmarkHandler) Add(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var input *usecase.AddBookmarkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid bookmark input")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid bookmark input")
	}

	bookmarks, err := h.uc.Add(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookmarks, "Bookmark added")
}

// Remove unpins every bookmark matching the given name.
func (h *BookmarkHandler) Remove(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.uc.Remove(c.Request().Context(), userID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookmarks, "Bookmark removed")
}
