package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupProServiceRoutes configures all pro service related routes
func SetupProServiceRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewProServiceController(db)

	proServices := app.Group("/proservices")
	proServices.Get("/", ctl.GetAll)
	proServices.Post("/", ctl.Create)
	proServices.Get("/:id", ctl.Get)
	proServices.Put("/:id", ctl.Update)
	proServices.Delete("/:id", ctl.Delete)

	app.Get("/pros/:proid/proservices", ctl.GetByPro)
}
