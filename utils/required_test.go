package utils

import (
	"reflect"
	"testing"
)

func TestMissingFields(t *testing.T) {
	body := map[string]any{
		"name":  "Ana",
		"email": "ana@example.com",
		"phone": nil,
	}

	if got := MissingFields(body, "name", "email"); got != nil {
		t.Fatalf("missing = %v, want none", got)
	}

	got := MissingFields(body, "name", "lastname", "phone", "password")
	want := []string{"lastname", "phone", "password"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("missing = %v, want %v", got, want)
	}
}

func TestMissingFieldsEmptyStringCounts(t *testing.T) {
	// An empty string is a present value; only absent or null keys are
	// reported.
	body := map[string]any{"name": ""}
	if got := MissingFields(body, "name"); got != nil {
		t.Fatalf("missing = %v, want none", got)
	}
}
