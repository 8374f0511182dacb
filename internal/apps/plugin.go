package apps

import (
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Plugin is a resource mounted under /api.
type Plugin interface {
	// ID names the resource; it is also its route prefix.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the resource on router, which is already prefixed
	// with /api. Private routes must be wrapped with the private handler.
	RegisterRoutes(router fiber.Router, private fiber.Handler, db *gorm.DB, cfg *config.Config)
}
