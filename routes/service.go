package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupServiceRoutes configures the catalog service routes, including the
// join-backed lookups by pro and by booking
func SetupServiceRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewServiceController(db)

	services := app.Group("/services")
	services.Get("/", ctl.GetAll)
	services.Post("/", ctl.Create)
	services.Get("/:id", ctl.Get)
	services.Put("/:id", ctl.Update)
	services.Delete("/:id", ctl.Delete)

	app.Get("/pros/:proid/services", ctl.GetByPro)
	app.Get("/bookings/:proserviceid/services", ctl.GetByBooking)
}
