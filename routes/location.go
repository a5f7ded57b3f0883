package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupLocationRoutes configures all location related routes
func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewLocationController(db)

	locations := app.Group("/locations")
	locations.Get("/", ctl.GetAll)
	locations.Post("/", ctl.Create)
	locations.Get("/:id", ctl.Get)
	locations.Put("/:id", ctl.Update)
	locations.Delete("/:id", ctl.Delete)

	app.Get("/pros/:proid/locations", ctl.GetByPro)
}
