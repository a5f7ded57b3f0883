package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/controllers"
	"github.com/probook/booking-app/middleware"
)

// SetupCalendarRoutes configures the Google Calendar integration and the
// holiday lookup
func SetupCalendarRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewCalendarController(db)

	app.Get("/get_holidays/:year", controllers.GetHolidays)
	app.Post("/tokens_exchange/:proid", ctl.TokensExchange)
	app.Get("/pros/:proid/tokens", middleware.Protected(), ctl.GetTokens)
	app.Post("/create-event/:proid", ctl.CreateEvent)
}
