package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewBookingController(db)

	bookings := app.Group("/bookings")
	bookings.Get("/", ctl.GetAll)
	bookings.Post("/", ctl.Create)
	bookings.Get("/:id", ctl.Get)
	bookings.Put("/:id", ctl.Update)
	bookings.Delete("/:id", ctl.Delete)

	app.Get("/pros/:proid/bookings", ctl.GetByPro)
}
