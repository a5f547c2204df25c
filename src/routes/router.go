package routes

import (
	"attendance-sf2/src/controllers"
	"attendance-sf2/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// Controllers ที่ router ต้องใช้
type Controllers struct {
	SF2        *controllers.SF2Controller
	Reports    *controllers.ReportsController
	Sections   *controllers.SectionsController
	ExportJobs *controllers.ExportJobsController
	AdminJobs  *controllers.AdminJobsController
}

// InitRoutes รวม routes จากแต่ละ module ไว้ใต้ /api. jwtSecret ว่าง = ไม่ตรวจ token
func InitRoutes(app *fiber.App, h Controllers, jwtSecret string) {
	api := app.Group("/api")
	if jwtSecret != "" {
		api.Use(middleware.AuthJWT(jwtSecret))
	}

	SF2Routes(api, h.SF2)
	ReportsRoutes(api, h.Reports)
	SectionsRoutes(api, h.Sections)
	ExportRoutes(api, h.ExportJobs)
	AdminRoutes(api, h.AdminJobs, jwtSecret != "")

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
