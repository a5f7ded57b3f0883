package controllers_test

import (
	"net/http"
	"testing"

	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
)

func seedPatient(t *testing.T, db *gorm.DB, email string) models.Patient {
	t.Helper()
	patient := models.Patient{
		Name:     "Luis",
		Lastname: "Martin",
		Email:    email,
		Phone:    "611222333",
	}
	if err := db.Create(&patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return patient
}

func TestCreatePatientReturnsRecord(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/patients", map[string]any{
		"name":     "Luis",
		"lastname": "Martin",
		"email":    "luis@example.com",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if body["email"] != "luis@example.com" {
		t.Fatalf("email = %v", body["email"])
	}
	if body["id"] == nil {
		t.Fatalf("no id assigned: %v", body)
	}
}

func TestCreatePatientDuplicateEmail(t *testing.T) {
	app, db := newTestApp(t)
	seedPatient(t, db, "luis@example.com")

	resp := doJSON(t, app, http.MethodPost, "/patients", map[string]any{
		"name":     "Otro",
		"lastname": "Luis",
		"email":    "luis@example.com",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if body["error"] != "duplicated_email" {
		t.Fatalf("error = %v, want duplicated_email", body["error"])
	}
}

func TestUpdatePatientPartial(t *testing.T) {
	app, db := newTestApp(t)
	patient := seedPatient(t, db, "luis@example.com")

	resp := doJSON(t, app, http.MethodPut, "/patients/1", map[string]any{"name": "X"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if body["name"] != "X" {
		t.Fatalf("name = %v, want X", body["name"])
	}
	if body["lastname"] != patient.Lastname || body["email"] != patient.Email || body["phone"] != patient.Phone {
		t.Fatalf("unspecified fields changed: %v", body)
	}
}

func TestDeletePatientCascadesBookings(t *testing.T) {
	app, db := newTestApp(t)
	pro := seedPro(t, db, "ana@example.com", "ana")
	patient := seedPatient(t, db, "luis@example.com")
	other := seedPatient(t, db, "eva@example.com")

	service := models.Service{Specialization: "physio", ServiceName: "massage"}
	db.Create(&service)
	proService := models.ProService{ProID: pro.ID, ServiceID: service.ID, Duration: 30, Price: 40}
	db.Create(&proService)

	for i := 0; i < 3; i++ {
		db.Create(&models.Booking{
			Date: "2026-09-01", StartingTime: "10:00", Status: "confirmed",
			ProServiceID: proService.ID, PatientID: patient.ID,
		})
	}
	db.Create(&models.Booking{
		Date: "2026-09-02", StartingTime: "11:00", Status: "confirmed",
		ProServiceID: proService.ID, PatientID: other.ID,
	})

	resp := doJSON(t, app, http.MethodDelete, "/patients/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var count int64
	db.Model(&models.Booking{}).Where("patient_id = ?", patient.ID).Count(&count)
	if count != 0 {
		t.Fatalf("bookings left for deleted patient = %d, want 0", count)
	}
	db.Model(&models.Booking{}).Where("patient_id = ?", other.ID).Count(&count)
	if count != 1 {
		t.Fatalf("other patient's bookings = %d, want 1", count)
	}
	if err := db.First(&models.Patient{}, patient.ID).Error; err == nil {
		t.Fatalf("patient still present after delete")
	}
}

func TestDeleteMissingPatientLeavesDataUntouched(t *testing.T) {
	app, db := newTestApp(t)
	patient := seedPatient(t, db, "luis@example.com")
	db.Create(&models.Booking{
		Date: "2026-09-01", StartingTime: "10:00", Status: "confirmed",
		ProServiceID: 1, PatientID: patient.ID,
	})

	resp := doJSON(t, app, http.MethodDelete, "/patients/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var bookings, patients int64
	db.Model(&models.Booking{}).Count(&bookings)
	db.Model(&models.Patient{}).Count(&patients)
	if bookings != 1 || patients != 1 {
		t.Fatalf("data touched: bookings=%d patients=%d", bookings, patients)
	}
}

func TestGetPatientByEmail(t *testing.T) {
	app, db := newTestApp(t)
	seedPatient(t, db, "luis@example.com")

	resp := doJSON(t, app, http.MethodGet, "/patients/email/luis@example.com", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if body["email"] != "luis@example.com" {
		t.Fatalf("email = %v", body["email"])
	}

	resp = doJSON(t, app, http.MethodGet, "/patients/email/nobody@example.com", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing email status = %d, want 404", resp.StatusCode)
	}
}
