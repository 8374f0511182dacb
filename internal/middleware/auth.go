package middleware

import (
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/dto"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/identity"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const tokenKey = "user"

// JWTProtected guards private routes. A request passes only with a valid
// bearer token whose subject is an existing user; that user becomes the
// request identity.
func JWTProtected(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ContextKey:     tokenKey,
		SuccessHandler: identity.Attach(db, tokenKey, unauthorized),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired token",
	})
}
