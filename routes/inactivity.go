package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupInactivityRoutes configures all inactivity period related routes
func SetupInactivityRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewInactivityController(db)

	inactivity := app.Group("/inactivity")
	inactivity.Get("/", ctl.GetAll)
	inactivity.Post("/", ctl.Create)
	inactivity.Get("/:id", ctl.Get)
	inactivity.Put("/:id", ctl.Update)
	inactivity.Delete("/:id", ctl.Delete)

	app.Get("/pros/:proid/inactivity", ctl.GetByPro)
}
