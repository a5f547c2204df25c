package routes

import (
	"attendance-sf2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func SF2Routes(router fiber.Router, h *controllers.SF2Controller) {
	sf2 := router.Group("/sf2")

	// POST /api/sf2/generate - สร้าง SF2 จาก payload
	sf2.Post("/generate", h.Generate)
	// GET /api/sf2/sections/:sectionId?schoolId=&year=&month= - สร้าง SF2 จากข้อมูลใน store
	sf2.Get("/sections/:sectionId", h.FromSection)
}
