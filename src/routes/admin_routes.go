package routes

import (
	"attendance-sf2/src/controllers"
	"attendance-sf2/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(router fiber.Router, h *controllers.AdminJobsController, authEnabled bool) {
	admin := router.Group("/admin")
	if authEnabled {
		admin.Use(middleware.RequireRole("admin"))
	}

	admin.Post("/jobs/migrate-section-refs", h.MigrateSectionRefs)
}
