package profile

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/identity"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, as *identity.Identity) (*fiber.App, *Service) {
	t.Helper()
	db := testutil.NewDB(t, New().Models()...)

	private := func(c *fiber.Ctx) error {
		if as == nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		identity.Set(c, *as)
		return c.Next()
	}

	app := fiber.New()
	New().RegisterRoutes(app.Group("/api"), private, db, testutil.Config())
	return app, NewService(db)
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestHandlerTestRoute(t *testing.T) {
	app, _ := newTestApp(t, nil)
	status, body := do(t, app, http.MethodGet, "/api/profile/test", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Profile works", body["msg"])
}

func TestHandlerPrivateRoutesNeedIdentity(t *testing.T) {
	app, _ := newTestApp(t, nil)
	status, _ := do(t, app, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestHandlerProfileFlow(t *testing.T) {
	id := identity.Identity{}
	app, svc := newTestApp(t, &id)
	user := newUser(t, svc.db, "Ada", "ada@example.com")
	id = user

	status, body := do(t, app, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No profile exists for this user", body["noprofile"])

	status, body = do(t, app, http.MethodGet, "/api/profile/handle/nobody", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "There is no profile for this user", body["noprofile"])

	status, body = do(t, app, http.MethodGet, "/api/profile/all", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "There are no profiles", body["noprofile"])

	status, body = do(t, app, http.MethodPost, "/api/profile", `{"handle":"a","status":"","skills":"go"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Handle needs to be between 2 and 40 characters", body["handle"])
	assert.Equal(t, "Status field is required", body["status"])

	status, body = do(t, app, http.MethodPost, "/api/profile", `{"handle":"ada","status":"Dev","skills":"go,sql","linkedin":"linkedin.com/in/ada"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ada", body["handle"])
	assert.Equal(t, "linkedin.com/in/ada", body["social"].(map[string]any)["linkedin"])
	assert.Equal(t, "Ada", body["user"].(map[string]any)["name"])

	status, body = do(t, app, http.MethodPost, "/api/profile/experience", `{"title":"Eng","company":"Acme","from":"2019-01-01"}`)
	require.Equal(t, http.StatusOK, status)
	exp := body["experience"].([]any)
	require.Len(t, exp, 1)

	status, body = do(t, app, http.MethodDelete, "/api/profile/experience/"+user.UserID.String(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Experience does not exist", body["noexperience"])

	status, body = do(t, app, http.MethodDelete, "/api/profile/education/"+user.UserID.String(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Education does not exist", body["noeducation"])

	status, body = do(t, app, http.MethodGet, "/api/profile/handle/ada", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ada", body["handle"])

	status, _ = do(t, app, http.MethodGet, "/api/profile/user/"+user.UserID.String(), "")
	assert.Equal(t, http.StatusOK, status)

	status, body = do(t, app, http.MethodDelete, "/api/profile", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, _ = do(t, app, http.MethodGet, "/api/profile/handle/ada", "")
	assert.Equal(t, http.StatusNotFound, status)
}
