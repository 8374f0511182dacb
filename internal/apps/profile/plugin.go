package profile

import (
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "profile" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Profile{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, private fiber.Handler, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	r := router.Group("/" + p.ID())

	// Public
	r.Get("/test", handler.Test)
	r.Get("/all", handler.All)
	r.Get("/handle/:handle", handler.ByHandle)
	r.Get("/user/:user_id", handler.ByUser)

	// Owner only
	r.Get("/", private, handler.Current)
	r.Post("/", private, handler.Upsert)
	r.Delete("/", private, handler.Delete)
	r.Post("/experience", private, handler.AddExperience)
	r.Delete("/experience/:exp_id", private, handler.RemoveExperience)
	r.Post("/education", private, handler.AddEducation)
	r.Delete("/education/:edu_id", private, handler.RemoveEducation)
}
