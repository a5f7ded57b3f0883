package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupHoursRoutes configures all working-hours related routes
func SetupHoursRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewHoursController(db)

	hours := app.Group("/hours")
	hours.Get("/", ctl.GetAll)
	hours.Post("/", ctl.Create)
	hours.Get("/:id", ctl.Get)
	hours.Put("/:id", ctl.Update)
	hours.Delete("/:id", ctl.Delete)

	app.Get("/pros/:proid/hours", ctl.GetByPro)
	app.Delete("/pros/:proid/hours", ctl.DeleteByPro)
	app.Get("/locations/:locationid/hours", ctl.GetByLocation)
}
