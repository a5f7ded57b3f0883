package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

var bookingColumns = []string{
	"date", "starting_time", "status", "pro_service_id", "patient_id",
	"pro_notes", "patient_notes",
}

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// GetAll returns all bookings
func (ctl *BookingController) GetAll(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := ctl.DB.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get bookings",
		})
	}
	return c.JSON(bookings)
}

// Create adds a booking and returns the created record
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "date", "starting_time", "status", "pro_service_id", "patient_id"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Incomplete data. Please provide date, starting_time, status, pro_service_id, and patient_id.",
		})
	}

	booking := models.Booking{
		Date:         strField(data, "date"),
		StartingTime: strField(data, "starting_time"),
		Status:       strField(data, "status"),
		ProServiceID: uintField(data, "pro_service_id"),
		PatientID:    uintField(data, "patient_id"),
		ProNotes:     strField(data, "pro_notes"),
		PatientNotes: strField(data, "patient_notes"),
	}
	if err := ctl.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// Get returns a booking by id
func (ctl *BookingController) Get(c *fiber.Ctx) error {
	var booking models.Booking
	if err := ctl.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	return c.JSON(booking)
}

// Update applies a partial update and returns the merged record
func (ctl *BookingController) Update(c *fiber.Ctx) error {
	var booking models.Booking
	if err := ctl.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if updates := pick(data, bookingColumns...); len(updates) > 0 {
		if err := ctl.DB.Model(&booking).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update booking",
			})
		}
	}
	ctl.DB.First(&booking, booking.ID)
	return c.JSON(booking)
}

// Delete removes a booking by id
func (ctl *BookingController) Delete(c *fiber.Ctx) error {
	var booking models.Booking
	if err := ctl.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	if err := ctl.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete booking",
		})
	}
	return c.JSON(fiber.Map{"message": "Record deleted successfully"})
}

// GetByPro returns all bookings reaching the pro through its pro services.
// Zero matches is a 404; callers cannot tell a missing pro from a pro with
// no bookings.
func (ctl *BookingController) GetByPro(c *fiber.Ctx) error {
	var bookings []models.Booking
	err := ctl.DB.
		Joins("JOIN pro_services ON pro_services.id = bookings.pro_service_id").
		Where("pro_services.pro_id = ?", c.Params("proid")).
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get bookings",
		})
	}
	if len(bookings) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No records found for the specified pro_id",
		})
	}
	return c.JSON(bookings)
}
