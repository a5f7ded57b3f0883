package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
	"github.com/probook/booking-app/middleware"
)

// SetupAuthRoutes configures login and the authenticated dashboard
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewAuthController(db)

	app.Post("/login", ctl.Login)
	app.Get("/dashboard", middleware.Protected(), ctl.Dashboard)
}
