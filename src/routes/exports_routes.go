package routes

import (
	"attendance-sf2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func ExportRoutes(router fiber.Router, h *controllers.ExportJobsController) {
	exports := router.Group("/exports")

	// POST /api/exports/sf2 - เข้าคิวสร้าง SF2 (async)
	exports.Post("/sf2", h.Submit)
	exports.Get("/:id", h.Status)
	exports.Get("/:id/download", h.Download)
}
