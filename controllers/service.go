package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

var serviceColumns = []string{"specialization", "service_name", "service_type"}

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// GetAll returns all catalog services
func (ctl *ServiceController) GetAll(c *fiber.Ctx) error {
	var services []models.Service
	if err := ctl.DB.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get services",
		})
	}
	return c.JSON(services)
}

// Create adds a catalog service
func (ctl *ServiceController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "specialization", "service_name"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "specialization and service_name are required",
		})
	}

	service := models.Service{
		Specialization: strField(data, "specialization"),
		ServiceName:    strField(data, "service_name"),
		ServiceType:    strField(data, "service_type"),
	}
	if err := ctl.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Record added successfully",
	})
}

// Get returns a catalog service by id
func (ctl *ServiceController) Get(c *fiber.Ctx) error {
	var service models.Service
	if err := ctl.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "service not found",
		})
	}
	return c.JSON(service)
}

// Update applies a partial update
func (ctl *ServiceController) Update(c *fiber.Ctx) error {
	var service models.Service
	if err := ctl.DB.First(&service, c.Params("id")).Error; err != nil {
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
	if updates := pick(data, serviceColumns...); len(updates) > 0 {
		if err := ctl.DB.Model(&service).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update service",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "service updated successfully"})
}

// Delete removes a catalog service by id
func (ctl *ServiceController) Delete(c *fiber.Ctx) error {
	var service models.Service
	if err := ctl.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "service not found",
		})
	}
	if err := ctl.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}
	return c.JSON(fiber.Map{"message": "service deleted successfully"})
}

// GetByPro returns the catalog services a pro offers, resolved through the
// pro_services join
func (ctl *ServiceController) GetByPro(c *fiber.Ctx) error {
	var services []models.Service
	err := ctl.DB.
		Joins("JOIN pro_services ON pro_services.service_id = services.id").
		Where("pro_services.pro_id = ?", c.Params("proid")).
		Find(&services).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get services",
		})
	}
	if len(services) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No records found for the specified pro_id",
		})
	}
	return c.JSON(services)
}

// GetByBooking resolves the service behind the pro service referenced by a
// booking. When several bookings share the pro service this returns the
// first match.
func (ctl *ServiceController) GetByBooking(c *fiber.Ctx) error {
	var service models.Service
	err := ctl.DB.
		Joins("JOIN pro_services ON pro_services.service_id = services.id").
		Joins("JOIN bookings ON bookings.pro_service_id = pro_services.id").
		Where("bookings.pro_service_id = ?", c.Params("proserviceid")).
		First(&service).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No records found for the specified pro_service_id",
		})
	}
	return c.JSON(service)
}
