package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupProRoutes configures all pro related routes. The username lookup is
// registered before the id routes so it is matched first.
func SetupProRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewProController(db)

	pros := app.Group("/pros")
	pros.Get("/username/:username", ctl.GetByUsername)
	pros.Get("/", ctl.GetAll)
	pros.Post("/", ctl.Create)
	pros.Get("/:id", ctl.Get)
	pros.Put("/:id", ctl.Update)
	pros.Delete("/:id", ctl.Delete)
}
