package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/library-inventory/internal/config"
	"github.com/iliyamo/library-inventory/internal/handler"    // import the handlers that implement the inventory operations
	"github.com/iliyamo/library-inventory/internal/middleware" // import the Redis-backed cache and rate limit middleware
)

// RegisterRoutes registers routes that live outside the versioned API on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterInventory registers the inventory API under the /v1 prefix and
// applies the rate limiter and the response cache to the whole group.  The
// cache only acts on the methods its config names (GET by default), so the
// mutating endpoints pass through it untouched.  A nil Redis client is
// allowed: both middlewares then degrade to pass-throughs and the API runs
// without the sidecar.
func RegisterInventory(e *echo.Echo, h *handler.InventoryHandler, rdb *redis.Client, rl config.RateLimitConfig, cache config.CacheConfig) {
	g := e.Group("/v1")
	g.Use(middleware.NewTokenBucket(rl, rdb))
	g.Use(middleware.NewRedisCache(cache, rdb))

	// Item intake and inspection.
	g.POST("/items", h.CreateItem)
	g.GET("/items", h.ListItems)
	g.GET("/items/:id/status", h.ItemStatus)

	// Circulation: checkout moves an item from the grid to the ledger,
	// checkin moves it back to the compartment it came from.
	g.POST("/items/:id/checkout", h.Checkout)
	g.POST("/items/:id/checkin", h.Checkin)
	g.GET("/checkouts", h.ListCheckouts)

	// Compartment probes and the swap operation.
	g.GET("/slots/:shelf/:compartment", h.SlotStatus)
	g.POST("/slots/swap", h.SwapSlots)

	// Plain text reports mirroring the console output.
	g.GET("/reports/storage", h.StorageReport)
	g.GET("/reports/checkouts", h.CheckoutsReport)
}
