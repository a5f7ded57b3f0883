package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
	"github.com/probook/booking-app/routes"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	err = database.AutoMigrate(
		&models.Pro{},
		&models.Location{},
		&models.Hours{},
		&models.Patient{},
		&models.Service{},
		&models.ProService{},
		&models.Booking{},
		&models.InactivityDays{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	routes.SetupAuthRoutes(app, database)
	routes.SetupCalendarRoutes(app, database)
	routes.SetupHoursRoutes(app, database)
	routes.SetupPatientRoutes(app, database)
	routes.SetupBookingRoutes(app, database)
	routes.SetupLocationRoutes(app, database)
	routes.SetupProRoutes(app, database)
	routes.SetupProServiceRoutes(app, database)
	routes.SetupServiceRoutes(app, database)
	routes.SetupInactivityRoutes(app, database)

	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func doAuthJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// seedPro inserts a pro directly, password already hashed by the create
// endpoint when one is needed; tests that do not exercise login use this
// shortcut.
func seedPro(t *testing.T, db *gorm.DB, email, username string) models.Pro {
	t.Helper()
	pro := models.Pro{
		Name:           "Ana",
		Lastname:       "Gomez",
		Email:          email,
		Phone:          "600123123",
		Password:       "not-a-real-hash",
		BookingpageURL: username,
	}
	if err := db.Create(&pro).Error; err != nil {
		t.Fatalf("seed pro: %v", err)
	}
	return pro
}
