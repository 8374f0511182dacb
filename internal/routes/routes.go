package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/apps"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// Setup mounts every /api route. storage backs the rate limiters; nil keeps
// counters in process memory.
func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, storage fiber.Storage, plugins []apps.Plugin) {
	authHandler := handlers.NewAuthHandler(services.NewAuthService(db, cfg))
	healthHandler := handlers.NewHealthHandler(db)

	api := app.Group("/api")

	// General API rate limiter: RATE_LIMIT_MAX req/min per IP
	api.Use(rateLimit("api", cfg.RateLimitMax, storage))

	api.Get("/health", healthHandler.Check)

	private := middleware.JWTProtected(cfg, db)

	// Users: stricter limit on credential endpoints
	users := api.Group("/users")
	users.Use(rateLimit("auth", cfg.AuthRateLimitMax, storage))
	users.Get("/test", authHandler.Test)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/current", private, authHandler.Current)

	for _, p := range plugins {
		p.RegisterRoutes(api, private, db, cfg)
	}
}

func rateLimit(scope string, max int, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return scope + ":" + c.IP() },
		Storage:           storage,
	})
}
