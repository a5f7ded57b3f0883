package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

var inactivityColumns = []string{
	"starting_date", "ending_date", "starting_hour", "ending_hour", "title", "pro_id",
}

type InactivityController struct {
	DB *gorm.DB
}

func NewInactivityController(db *gorm.DB) *InactivityController {
	return &InactivityController{DB: db}
}

// GetAll returns all inactivity periods
func (ctl *InactivityController) GetAll(c *fiber.Ctx) error {
	var inactivities []models.InactivityDays
	if err := ctl.DB.Find(&inactivities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get inactivity days",
		})
	}
	return c.JSON(inactivities)
}

// Create adds an inactivity period for a pro
func (ctl *InactivityController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "starting_date", "pro_id"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "starting_date and pro_id are required",
		})
	}

	inactivity := models.InactivityDays{
		StartingDate: strField(data, "starting_date"),
		EndingDate:   strField(data, "ending_date"),
		StartingHour: strField(data, "starting_hour"),
		EndingHour:   strField(data, "ending_hour"),
		Title:        strField(data, "title"),
		ProID:        uintField(data, "pro_id"),
	}
	if err := ctl.DB.Create(&inactivity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create inactivity day",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Record added successfully",
	})
}

// Get returns an inactivity period by id
func (ctl *InactivityController) Get(c *fiber.Ctx) error {
	var inactivity models.InactivityDays
	if err := ctl.DB.First(&inactivity, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "inactivity_day not found",
		})
	}
	return c.JSON(inactivity)
}

// Update applies a partial update
func (ctl *InactivityController) Update(c *fiber.Ctx) error {
	var inactivity models.InactivityDays
	if err := ctl.DB.First(&inactivity, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "inactivity_day not found",
		})
	}
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if updates := pick(data, inactivityColumns...); len(updates) > 0 {
		if err := ctl.DB.Model(&inactivity).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update inactivity day",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "inactivity_day updated successfully"})
}

// Delete removes an inactivity period by id
func (ctl *InactivityController) Delete(c *fiber.Ctx) error {
	var inactivity models.InactivityDays
	if err := ctl.DB.First(&inactivity, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "inactivity_day not found",
		})
	}
	if err := ctl.DB.Delete(&inactivity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete inactivity day",
		})
	}
	return c.JSON(fiber.Map{"message": "inactivity_day deleted successfully"})
}

// GetByPro returns the inactivity periods of a pro, 404 when there are none
func (ctl *InactivityController) GetByPro(c *fiber.Ctx) error {
	var inactivities []models.InactivityDays
	if err := ctl.DB.Where("pro_id = ?", c.Params("proid")).Find(&inactivities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get inactivity days",
		})
	}
	if len(inactivities) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No records found for the specified pro_id",
		})
	}
	return c.JSON(inactivities)
}
