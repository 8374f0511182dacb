// Package server assembles the Fiber application: global middleware, the
// metrics endpoint and every /api route.
package server

import (
	"errors"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/apps"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/apps/posts"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/apps/profile"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/routes"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Plugins lists the resources served under /api.
func Plugins() []apps.Plugin {
	return []apps.Plugin{
		profile.New(),
		posts.New(),
	}
}

// New builds the application. storage is the shared rate-limit store and may be nil.
func New(cfg *config.Config, db *gorm.DB, storage fiber.Storage) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "devconnector",
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})

	if cfg.SentryDSN != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))

	if cfg.MetricsEnabled {
		app.Use(middleware.Metrics())
		app.Get("/metrics", middleware.MetricsHandler())
	}

	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, db, storage, Plugins())

	return app
}

// ErrorHandler renders errors that escape handlers. Details are only exposed
// for 4xx responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err.Error(),
		)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
