package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

var hoursColumns = []string{
	"working_day", "starting_hour_morning", "ending_hour_morning",
	"starting_hour_after", "ending_hour_after", "pro_id", "location_id",
}

type HoursController struct {
	DB *gorm.DB
}

func NewHoursController(db *gorm.DB) *HoursController {
	return &HoursController{DB: db}
}

// GetAll returns all working-hours rules
func (ctl *HoursController) GetAll(c *fiber.Ctx) error {
	var hours []models.Hours
	if err := ctl.DB.Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get hours",
		})
	}
	return c.JSON(hours)
}

// Create adds a working-hours rule
func (ctl *HoursController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "working_day", "starting_hour_morning", "ending_hour_morning", "pro_id"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "all data are required",
		})
	}

	hour := models.Hours{
		WorkingDay:          strField(data, "working_day"),
		StartingHourMorning: strField(data, "starting_hour_morning"),
		EndingHourMorning:   strField(data, "ending_hour_morning"),
		StartingHourAfter:   optStrField(data, "starting_hour_after"),
		EndingHourAfter:     optStrField(data, "ending_hour_after"),
		LocationID:          optUintField(data, "location_id"),
		ProID:               uintField(data, "pro_id"),
	}
	if err := ctl.DB.Create(&hour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create hour",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Record added successfully",
	})
}

// Get returns a working-hours rule by id
func (ctl *HoursController) Get(c *fiber.Ctx) error {
	var hour models.Hours
	if err := ctl.DB.First(&hour, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	return c.JSON(hour)
}

// Update applies a partial update
func (ctl *HoursController) Update(c *fiber.Ctx) error {
	var hour models.Hours
	if err := ctl.DB.First(&hour, c.Params("id")).Error; err != nil {
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
	if updates := pick(data, hoursColumns...); len(updates) > 0 {
		if err := ctl.DB.Model(&hour).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update hour",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "Record updated successfully"})
}

// Delete removes a working-hours rule by id
func (ctl *HoursController) Delete(c *fiber.Ctx) error {
	var hour models.Hours
	if err := ctl.DB.First(&hour, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	if err := ctl.DB.Delete(&hour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete hour",
		})
	}
	return c.JSON(fiber.Map{"message": "Record deleted successfully"})
}

// GetByPro returns the working-hours rules of a pro, 404 when there are none
func (ctl *HoursController) GetByPro(c *fiber.Ctx) error {
	var hours []models.Hours
	if err := ctl.DB.Where("pro_id = ?", c.Params("proid")).Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get hours",
		})
	}
	if len(hours) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	return c.JSON(hours)
}

// DeleteByPro removes every working-hours rule owned by a pro
func (ctl *HoursController) DeleteByPro(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.First(&pro, c.Params("proid")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "pro not found",
		})
	}
	if err := ctl.DB.Where("pro_id = ?", pro.ID).Delete(&models.Hours{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete hours",
		})
	}
	return c.JSON(fiber.Map{"message": "Hours deleted"})
}

// GetByLocation returns the working-hours rules tied to a location, 404
// when there are none
func (ctl *HoursController) GetByLocation(c *fiber.Ctx) error {
	var hours []models.Hours
	if err := ctl.DB.Where("location_id = ?", c.Params("locationid")).Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get hours",
		})
	}
	if len(hours) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	return c.JSON(hours)
}
