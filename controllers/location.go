package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

var locationColumns = []string{"name", "city", "address", "country", "pro_id", "time_zone"}

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// GetAll returns all locations
func (ctl *LocationController) GetAll(c *fiber.Ctx) error {
	var locations []models.Location
	if err := ctl.DB.Find(&locations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get locations",
		})
	}
	return c.JSON(locations)
}

// Create adds a work location for a pro
func (ctl *LocationController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "city", "address", "country", "pro_id", "name"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Incomplete data. Please provide name, city, address, country, and pro_id.",
		})
	}

	location := models.Location{
		Name:     strField(data, "name"),
		City:     strField(data, "city"),
		Address:  strField(data, "address"),
		Country:  strField(data, "country"),
		TimeZone: strField(data, "time_zone"),
		ProID:    uintField(data, "pro_id"),
	}
	if err := ctl.DB.Create(&location).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create location",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Record added successfully",
	})
}

// Get returns a location by id
func (ctl *LocationController) Get(c *fiber.Ctx) error {
	var location models.Location
	if err := ctl.DB.First(&location, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	return c.JSON(location)
}

// Update applies a partial update
func (ctl *LocationController) Update(c *fiber.Ctx) error {
	var location models.Location
	if err := ctl.DB.First(&location, c.Params("id")).Error; err != nil {
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
	if updates := pick(data, locationColumns...); len(updates) > 0 {
		if err := ctl.DB.Model(&location).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update location",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "Record updated successfully"})
}

// Delete removes a location by id
func (ctl *LocationController) Delete(c *fiber.Ctx) error {
	var location models.Location
	if err := ctl.DB.First(&location, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	}
	if err := ctl.DB.Delete(&location).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete location",
		})
	}
	return c.JSON(fiber.Map{"message": "Record deleted successfully"})
}

// GetByPro returns the locations owned by a pro, 404 when there are none
func (ctl *LocationController) GetByPro(c *fiber.Ctx) error {
	var locations []models.Location
	if err := ctl.DB.Where("pro_id = ?", c.Params("proid")).Find(&locations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get locations",
		})
	}
	if len(locations) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No records found for the specified pro_id",
		})
	}
	return c.JSON(locations)
}
