package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	owner := uuid.New()

	assert.Equal(t, Authorized, Guard(Identity{UserID: owner}, owner))
	assert.Equal(t, Forbidden, Guard(Identity{UserID: uuid.New()}, owner))
	assert.Equal(t, Forbidden, Guard(Identity{}, uuid.Nil))
	assert.Equal(t, "forbidden", Forbidden.String())
	assert.Equal(t, "authorized", Authorized.String())
}

func TestSubjectFromToken(t *testing.T) {
	id := uuid.New()

	got, err := SubjectFromToken(&jwt.Token{Claims: jwt.MapClaims{"sub": id.String()}})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = SubjectFromToken(nil)
	assert.Error(t, err)

	_, err = SubjectFromToken(&jwt.Token{Claims: jwt.MapClaims{}})
	assert.Error(t, err)

	_, err = SubjectFromToken(&jwt.Token{Claims: jwt.MapClaims{"sub": "not-a-uuid"}})
	assert.Error(t, err)
}

func TestFromRoundTrip(t *testing.T) {
	app := fiber.New()
	want := Identity{UserID: uuid.New(), Name: "Ada"}

	app.Get("/with", func(c *fiber.Ctx) error {
		Set(c, want)
		got, err := From(c)
		if err != nil || got != want {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		if _, err := From(c); err != ErrNoIdentity {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	for _, path := range []string{"/with", "/without"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}
