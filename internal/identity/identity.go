// Package identity carries the authenticated user through a request.
//
// The auth middleware verifies the bearer token, loads the user it names and
// stores an Identity in the request locals. Handlers read it with From and
// pass it explicitly to the services they call.
package identity

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const localsKey = "identity"

var ErrNoIdentity = errors.New("no authenticated identity in context")

// Identity is the authenticated user attached to a request.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Avatar string
}

func FromUser(u *models.User) Identity {
	return Identity{UserID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

// From returns the identity stored by Attach.
func From(c *fiber.Ctx) (Identity, error) {
	id, ok := c.Locals(localsKey).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// Set stores id on the request. Exposed for Attach and for tests that mount
// handlers without the JWT layer.
func Set(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

// SubjectFromToken extracts the user UUID from the "sub" claim of a verified token.
func SubjectFromToken(token *jwt.Token) (uuid.UUID, error) {
	if token == nil {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// Attach runs after token verification. It loads the user named by the token
// and rejects the request when that user no longer exists.
func Attach(db *gorm.DB, tokenKey string, reject fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, _ := c.Locals(tokenKey).(*jwt.Token)
		userID, err := SubjectFromToken(token)
		if err != nil {
			return reject(c)
		}

		var user models.User
		if err := db.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
			return reject(c)
		}

		Set(c, FromUser(&user))
		return c.Next()
	}
}
