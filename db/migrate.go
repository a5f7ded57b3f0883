package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
)

// Migrate runs the schema migrations for all entities.
func Migrate(database *gorm.DB) {
	err := database.AutoMigrate(
		&models.Pro{},
		&models.Location{},
		&models.Hours{},
		&models.Patient{},
		&models.Service{},
		&models.ProService{},
		&models.Booking{},
		&models.InactivityDays{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	log.Println("Migrations applied")
}
