package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/probook/booking-app/cron"
	"github.com/probook/booking-app/db"
	"github.com/probook/booking-app/redis"
	"github.com/probook/booking-app/routes"
)

func main() {
	database := db.Init()
	db.Migrate(database)
	redis.Init()
	cron.StartReminderJob(database)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, database)
	routes.SetupCalendarRoutes(app, database)
	routes.SetupHoursRoutes(app, database)
	routes.SetupPatientRoutes(app, database)
	routes.SetupBookingRoutes(app, database)
	routes.SetupLocationRoutes(app, database)
	routes.SetupProRoutes(app, database)
	routes.SetupProServiceRoutes(app, database)
	routes.SetupServiceRoutes(app, database)
	routes.SetupInactivityRoutes(app, database)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
