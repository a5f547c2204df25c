package routes

import (
	"attendance-sf2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func ReportsRoutes(router fiber.Router, h *controllers.ReportsController) {
	reports := router.Group("/reports")

	reports.Get("/", h.Summary)
	reports.Get("/top-attendees", h.TopAttendees)
	reports.Get("/daily-totals", h.DailyTotals)
	reports.Get("/section-totals", h.SectionTotals)
	reports.Get("/pdf", h.PDF)
}
