// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing
	"github.com/redis/go-redis/v9"

	"github.com/oseyo/open-space-listing/internal/config"
	"github.com/oseyo/open-space-listing/internal/handler"
	"github.com/oseyo/open-space-listing/internal/middleware"
)

// Handlers bundles the handler groups the routes dispatch to.
type Handlers struct {
	Events    *handler.EventHandler
	Favorites *handler.FavoriteHandler
	Places    *handler.PlaceHandler
}

// Register wires up every route of the service.  The rate limiter guards
// all of /v1; the response cache sits only on the two public listing
// routes, which are the ones polled by the UI.  rdb may be nil, in which
// case both middlewares are pass-through.
func Register(e *echo.Echo, h Handlers, rdb *redis.Client) {
	// Liveness probe, outside any middleware.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	// Events: create and hard-delete mutate the store; the active listing
	// and the map payload are read-only and cacheable.
	v1.POST("/events", h.Events.CreateEvent)
	v1.DELETE("/events/:id", h.Events.DeleteEvent)
	v1.GET("/events/active", h.Events.ListActiveEvents, cache)
	v1.GET("/map/points", h.Events.MapPoints, cache)

	// Favorites: remembered activity names for the create form.
	v1.GET("/favorites", h.Favorites.ListFavorites)
	v1.POST("/favorites", h.Favorites.AddFavorite)
	v1.DELETE("/favorites/:activity", h.Favorites.RemoveFavorite)

	// Place search against the external geocoder.
	v1.GET("/places/search", h.Places.SearchPlaces)
}
