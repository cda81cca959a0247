package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/oseyo/open-space-listing/internal/clock"
	"github.com/oseyo/open-space-listing/internal/config"
	"github.com/oseyo/open-space-listing/internal/database"
	"github.com/oseyo/open-space-listing/internal/handler"
	"github.com/oseyo/open-space-listing/internal/place"
	"github.com/oseyo/open-space-listing/internal/repository"
	"github.com/oseyo/open-space-listing/internal/router"
)

func main() {
	// Load .env when present; in deployed environments the variables come
	// from the platform and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: %v", err)
	}
	cancel()

	// Redis is optional: nil disables response caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; caching and rate limiting disabled")
	}

	clk := clock.System{} // KST wall clock shared by every timestamp point

	h := router.Handlers{
		Events:    &handler.EventHandler{Events: repository.NewEventRepo(db), Clock: clk},
		Favorites: &handler.FavoriteHandler{Favorites: repository.NewFavoriteRepo(db), Clock: clk},
		Places: &handler.PlaceHandler{
			Search:      place.NewClient(cfg.KakaoRESTKey),
			DefaultSize: cfg.PlaceSearchSize,
		},
	}

	e := echo.New() // Create Echo instance
	router.Register(e, h, rdb)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
