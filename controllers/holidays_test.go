package controllers_test

import (
	"net/http"
	"testing"
)

func TestGetHolidaysOrdered(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/get_holidays/2025", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	list, ok := body["holidays"].([]any)
	if !ok || len(list) == 0 {
		t.Fatalf("holidays empty or malformed: %v", body)
	}

	prev := ""
	for _, item := range list {
		entry := item.(map[string]any)
		date := entry["date"].(string)
		if date < prev {
			t.Fatalf("dates out of order: %s before %s", prev, date)
		}
		prev = date
		if entry["holiday"] == "" {
			t.Fatalf("holiday without label: %v", entry)
		}
	}
}

func TestGetHolidaysBadYear(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/get_holidays/abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
