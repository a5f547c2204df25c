package routes

import (
	"attendance-sf2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func SectionsRoutes(router fiber.Router, h *controllers.SectionsController) {
	sections := router.Group("/sections")

	sections.Get("/", h.List)
	sections.Get("/:sectionId/students", h.Students)
}
