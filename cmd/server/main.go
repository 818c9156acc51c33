package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv" // Loads .env files for local development
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/library-inventory/internal/config"    // Internal config loader
	"github.com/iliyamo/library-inventory/internal/handler"   // HTTP handlers over the storage engine
	"github.com/iliyamo/library-inventory/internal/inventory" // In-memory grid and ledger
	"github.com/iliyamo/library-inventory/internal/queue"     // Circulation event consumer
	"github.com/iliyamo/library-inventory/internal/router"    // Internal router setup
)

func main() {
	// Best-effort .env load for local development; deployed environments
	// set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()                  // Load environment config
	events := config.LoadEventsConfig()   // Circulation event switches

	inv := inventory.New()                                                // One engine instance holds all state
	h := handler.NewInventoryHandler(inv, handler.NewIDAllocator(), events) // Identities start at 1000

	rdb := config.NewRedisClient() // May be nil when Redis is unreachable
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	if events.ConsumerEnabled {
		go func() { // The consumer reconnects forever; run it beside the server
			if err := queue.StartCirculationConsumer(); err != nil {
				log.Printf("circulation-consumer: %v", err)
			}
		}()
	}

	e := echo.New()          // Create Echo instance
	e.Use(echomw.Logger())   // Request logging
	e.Use(echomw.Recover())  // Convert panics into 500s
	router.RegisterRoutes(e) // Health check
	router.RegisterInventory(e, h, rdb, config.LoadRateLimitConfig(), config.LoadCacheConfig())

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
