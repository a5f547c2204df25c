package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"attendance-sf2/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(Metrics())
	api := app.Group("/api", AuthJWT(secret))
	api.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"schoolId": c.Locals("schoolId")})
	})
	api.Post("/admin", RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := utils.GenerateJWT(secret, "u1", "SCH001", "teacher", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := newApp()

	teacher, _ := utils.GenerateJWT(secret, "u1", "SCH001", "teacher", time.Hour)
	req := httptest.NewRequest("POST", "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+teacher)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin, _ := utils.GenerateJWT(secret, "u2", "SCH001", "Admin", time.Hour)
	req = httptest.NewRequest("POST", "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestMetricsCountsRoutePattern(t *testing.T) {
	app := newApp()
	counter := utils.HTTPRequests.WithLabelValues("GET", "/api/me", "200")
	before := testutil.ToFloat64(counter)

	token, _ := utils.GenerateJWT(secret, "u1", "SCH001", "teacher", time.Hour)
	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
