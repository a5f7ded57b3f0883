package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/utils"
)

var patientColumns = []string{"name", "lastname", "email", "phone"}

type PatientController struct {
	DB *gorm.DB
}

func NewPatientController(db *gorm.DB) *PatientController {
	return &PatientController{DB: db}
}

// GetAll returns all patients
func (ctl *PatientController) GetAll(c *fiber.Ctx) error {
	var patients []models.Patient
	if err := ctl.DB.Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get patients",
		})
	}
	return c.JSON(patients)
}

// Create adds a patient and returns the created record
func (ctl *PatientController) Create(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if missing := utils.MissingFields(data, "name", "lastname", "email"); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, lastname, and email are required",
		})
	}

	patient := models.Patient{
		Name:     strField(data, "name"),
		Lastname: strField(data, "lastname"),
		Email:    strField(data, "email"),
		Phone:    strField(data, "phone"),
	}
	if err := ctl.DB.Create(&patient).Error; err != nil {
		if duplicateField(err) == "email" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duplicated_email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create patient",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// Get returns a patient by id
func (ctl *PatientController) Get(c *fiber.Ctx) error {
	var patient models.Patient
	if err := ctl.DB.First(&patient, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "patient not found",
		})
	}
	return c.JSON(patient)
}

// Update applies a partial update and returns the merged record
func (ctl *PatientController) Update(c *fiber.Ctx) error {
	var patient models.Patient
	if err := ctl.DB.First(&patient, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "patient not found",
		})
	}
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if updates := pick(data, patientColumns...); len(updates) > 0 {
		if err := ctl.DB.Model(&patient).Updates(updates).Error; err != nil {
			if duplicateField(err) == "email" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duplicated_email"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update patient",
			})
		}
	}
	ctl.DB.First(&patient, patient.ID)
	return c.JSON(patient)
}

// Delete removes a patient and every booking that references it, as one
// transaction: either all rows go or none do.
func (ctl *PatientController) Delete(c *fiber.Ctx) error {
	var patient models.Patient
	if err := ctl.DB.First(&patient, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "patient not found",
		})
	}
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", patient.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&patient).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete patient",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Patient deleted successfully. All bookings associated to this patient have been deleted",
	})
}

// GetByEmail looks a patient up by email
func (ctl *PatientController) GetByEmail(c *fiber.Ctx) error {
	var patient models.Patient
	if err := ctl.DB.Where("email = ?", c.Params("email")).First(&patient).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "patient not found",
		})
	}
	return c.JSON(patient)
}
