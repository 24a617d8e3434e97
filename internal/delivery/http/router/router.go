// Package router contains routing setup for the HTTP delivery.
package router

import (
	"herenow/internal/delivery/http/middleware"
	"herenow/internal/delivery/http/router/handler"
	"herenow/internal/domain/entity"
	"herenow/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ListingHandler *handler.ListingHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
	Gatherer       prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	listingHandler *handler.ListingHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		listingHandler: params.ListingHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
		gatherer:       params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.Signup)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/google", r.userHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Listing mutations resolve the session when present but let the action
	// layer decide; a missing record answers before a missing session does.
	eventGroup := e.Group("/events")
	eventGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		eventGroup.POST("", r.listingHandler.Create(entity.ListingKindEvent))
		eventGroup.PUT("/:id", r.listingHandler.Update(entity.ListingKindEvent))
		eventGroup.DELETE("/:id", r.listingHandler.Delete(entity.ListingKindEvent))
	}

	siteGroup := e.Group("/sites")
	siteGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		siteGroup.POST("", r.listingHandler.Create(entity.ListingKindSite))
		siteGroup.PUT("/:id", r.listingHandler.Update(entity.ListingKindSite))
		siteGroup.DELETE("/:id", r.listingHandler.Delete(entity.ListingKindSite))
	}

	// Listing reads and the validation dry-run
	listingGroup := e.Group("/listings")
	{
		listingGroup.POST("/validate", r.listingHandler.Validate)
		listingGroup.GET("/:id", r.listingHandler.Get)
		listingGroup.GET("/:id/qrcode", r.listingHandler.ShareQRCode)
	}

	e.GET("/timeline", r.listingHandler.Timeline)

	// Media uploads require a signed-in user
	mediaGroup := e.Group("/media")
	mediaGroup.Use(r.authMiddleware.Authenticate)
	{
		mediaGroup.POST("/upload", r.mediaHandler.Upload)
	}
}
