package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

// StartReminderJob schedules the daily sweep that mails patients about
// their confirmed bookings for the next day.
func StartReminderJob(db *gorm.DB) {
	c := cron.New()
	_, err := c.AddFunc("0 18 * * *", func() { sendBookingReminders(db) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for booking reminders")
}

func sendBookingReminders(db *gorm.DB) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	err := db.Preload("Patient").Preload("ProService.Service").
		Where("date = ? AND status = ?", tomorrow, "confirmed").
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if booking.Patient.Email == "" {
			continue
		}
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Patient.Email)
	}
}

func sendReminderEmail(booking *models.Booking) error {
	subject := "Reminder: your appointment tomorrow"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment tomorrow.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact your professional as soon as possible.</p>
	`, booking.Patient.Name, booking.ProService.Service.ServiceName,
		booking.Date, booking.StartingTime)

	return utils.SendEmail(booking.Patient.Email, subject, body)
}
