package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

var proServiceColumns = []string{"pro_id", "service_id", "duration", "price"}

type ProServiceController struct {
	DB *gorm.DB
}

func NewProServiceController(db *gorm.DB) *ProServiceController {
	return &ProServiceController{DB: db}
}

// GetAll returns all pro services
func (ctl *ProServiceController) GetAll(c *fiber.Ctx) error {
	var proServices []models.ProService
	if err := ctl.DB.Find(&proServices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get pro services",
		})
	}
	return c.JSON(proServices)
}

// Create links a pro to a catalog service with its own duration and price
func (ctl *ProServiceController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "pro_id", "service_id"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "pro_id and service_id are required",
		})
	}

	proService := models.ProService{
		ProID:     uintField(data, "pro_id"),
		ServiceID: uintField(data, "service_id"),
		Duration:  intField(data, "duration"),
		Price:     floatField(data, "price"),
	}
	if err := ctl.DB.Create(&proService).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create pro service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Record added successfully",
	})
}

// Get returns a pro service by id
func (ctl *ProServiceController) Get(c *fiber.Ctx) error {
	var proService models.ProService
	if err := ctl.DB.First(&proService, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "service not found",
		})
	}
	return c.JSON(proService)
}

// Update applies a partial update
func (ctl *ProServiceController) Update(c *fiber.Ctx) error {
	var proService models.ProService
	if err := ctl.DB.First(&proService, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "service not found",
		})
	}
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if updates := pick(data, proServiceColumns...); len(updates) > 0 {
		if err := ctl.DB.Model(&proService).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update pro service",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "service updated successfully"})
}

// Delete removes a pro service by id
func (ctl *ProServiceController) Delete(c *fiber.Ctx) error {
	var proService models.ProService
	if err := ctl.DB.First(&proService, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "service not found",
		})
	}
	if err := ctl.DB.Delete(&proService).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete pro service",
		})
	}
	return c.JSON(fiber.Map{"message": "service deleted successfully"})
}

// GetByPro returns the pro services owned by a pro, 404 when there are none
func (ctl *ProServiceController) GetByPro(c *fiber.Ctx) error {
	var proServices []models.ProService
	if err := ctl.DB.Where("pro_id = ?", c.Params("proid")).Find(&proServices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get pro services",
		})
	}
	if len(proServices) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No records found for the specified pro_id",
		})
	}
	return c.JSON(proServices)
}
