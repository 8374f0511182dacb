package posts

import (
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "posts" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Post{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, private fiber.Handler, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	r := router.Group("/" + p.ID())

	r.Get("/test", handler.Test)
	r.Get("/", handler.List)
	r.Get("/:id", handler.Get)

	r.Post("/", private, handler.Create)
	r.Delete("/:id", private, handler.Delete)
	r.Post("/like/:id", private, handler.Like)
	r.Post("/unlike/:id", private, handler.Unlike)
	r.Post("/comment/:id", private, handler.AddComment)
	r.Delete("/comment/:id/:comment_id", private, handler.DeleteComment)
}
