package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

// proColumns are the columns a partial update may touch. Password is handled
// separately so it is always stored hashed; Google tokens only change
// through the credential exchange.
var proColumns = []string{
	"name", "lastname", "email", "phone", "bookingpage_url",
	"config_status", "subscription", "title",
}

type ProController struct {
	DB *gorm.DB
}

func NewProController(db *gorm.DB) *ProController {
	return &ProController{DB: db}
}

// GetAll returns all pros
func (ctl *ProController) GetAll(c *fiber.Ctx) error {
	var pros []models.Pro
	if err := ctl.DB.Find(&pros).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get pros",
		})
	}
	return c.JSON(pros)
}

// Create registers a new pro. Duplicate email or bookingpage URL comes back
// as a machine-readable 400 instead of a generic failure.
func (ctl *ProController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "name", "lastname", "email", "phone", "password", "bookingpage_url"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, lastname, email, phone, password and bookingpage are required",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(strField(data, "password")), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	pro := models.Pro{
		Name:           strField(data, "name"),
		Lastname:       strField(data, "lastname"),
		Email:          strField(data, "email"),
		Phone:          strField(data, "phone"),
		Password:       string(hashed),
		BookingpageURL: strField(data, "bookingpage_url"),
		ConfigStatus:   strField(data, "config_status"),
		Subscription:   strField(data, "subscription"),
		Title:          strField(data, "title"),
	}
	if err := ctl.DB.Create(&pro).Error; err != nil {
		switch duplicateField(err) {
		case "email":
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duplicated_email"})
		case "bookingpage_url":
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duplicated_username"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create pro",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Record added successfully",
	})
}

// Get returns a pro by id
func (ctl *ProController) Get(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.First(&pro, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "pro not found",
		})
	}
	return c.JSON(pro)
}

// Update applies a partial update; fields absent from the body keep their
// stored value.
func (ctl *ProController) Update(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.First(&pro, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "pro not found",
		})
	}
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	updates := pick(data, proColumns...)
	if pw, ok := data["password"].(string); ok && pw != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}
		updates["password"] = string(hashed)
	}
	if len(updates) > 0 {
		if err := ctl.DB.Model(&pro).Updates(updates).Error; err != nil {
			switch duplicateField(err) {
			case "email":
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duplicated_email"})
			case "bookingpage_url":
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duplicated_username"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update pro",
			})
		}
	}

	ctl.DB.First(&pro, pro.ID)
	return c.JSON(pro)
}

// Delete removes a pro by id
func (ctl *ProController) Delete(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.First(&pro, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "pro not found",
		})
	}
	if err := ctl.DB.Delete(&pro).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete pro",
		})
	}
	return c.JSON(fiber.Map{"message": "pro deleted successfully"})
}

// GetByUsername looks a pro up by its public bookingpage URL
func (ctl *ProController) GetByUsername(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.Where("bookingpage_url = ?", c.Params("username")).First(&pro).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "pro not found",
		})
	}
	return c.JSON(pro)
}
