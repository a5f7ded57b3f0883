package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewPatientController(db)

	patients := app.Group("/patients")
	patients.Get("/email/:email", ctl.GetByEmail)
	patients.Get("/", ctl.GetAll)
	patients.Post("/", ctl.Create)
	patients.Get("/:id", ctl.Get)
	patients.Put("/:id", ctl.Update)
	patients.Delete("/:id", ctl.Delete)
}
