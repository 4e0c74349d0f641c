package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/config"
	"github.com/kforum/moderation/pkg/infra/jwt"
	"github.com/kforum/moderation/pkg/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T) (*fiber.App, jwt.Manager) {
	t.Helper()
	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "test-secret"})
	logger := logrus.New()

	app := fiber.New()
	auth := middleware.NewAuthMiddleware(logger, manager).Middleware()
	admin := middleware.NewAdminMiddleware(logger).Middleware()

	echo := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals(common.UserIDLocalKey),
			"is_admin": c.Locals(common.IsAdminLocalKey),
		})
	}
	app.Get("/protected", auth, echo)
	app.Get("/admin", auth, admin, echo)

	optional := middleware.NewOptionalAuthMiddleware(logger, manager).Middleware()
	app.Get("/public", optional, echo)

	return app, manager
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectsMalformedHeader(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	app, manager := newAuthApp(t)

	token, err := manager.CreateToken("user-1", false)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminMiddleware_ForbidsNonAdmin(t *testing.T) {
	app, manager := newAuthApp(t)

	token, err := manager.CreateToken("user-1", false)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	app, manager := newAuthApp(t)

	token, err := manager.CreateToken("moderator", true)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalAuthMiddleware_PassesAnonymousThrough(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/public", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalAuthMiddleware_IgnoresInvalidToken(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
