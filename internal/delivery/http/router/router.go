// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hubmark/internal/delivery/http/middleware"
	"hubmark/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	BookmarkHandler *handler.BookmarkHandler
	SearchHandler   *handler.SearchHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	bookmarkHandler *handler.BookmarkHandler
	searchHandler   *handler.SearchHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		bookmarkHandler: params.BookmarkHandler,
		searchHandler:   params.SearchHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Bookmark routes keyed by user ID
	bookmarkGroup := e.Group("/bookmarks")
	bookmarkGroup.Use(r.authMiddleware.Authenticate)
	{
		bookmarkGroup.GET("/:userId", r.bookmarkHandler.List)
		bookmarkGroup.POST("/:userId", r.bookmarkHandler.Add)
		bookmarkGroup.DELETE("/:userId/:name", r.bookmarkHandler.Remove)
	}

	// Repository search proxy
	searchGroup := e.Group("/search")
	searchGroup.Use(r.authMiddleware.Authenticate)
	{
		searchGroup.GET("", r.searchHandler.Search)
	}
}
