package controllers

import (
	"strings"
)

// duplicateField inspects a persistence error and, when it is a unique
// violation, names the field whose constraint fired. Postgres error text
// carries the constraint name ("pros_bookingpage_url_key"), sqlite the
// qualified column ("pros.bookingpage_url"); both mention the field.
// Returns "" for anything that is not a unique violation.
func duplicateField(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate key") &&
		!strings.Contains(msg, "UNIQUE constraint") {
		return ""
	}
	if strings.Contains(msg, "bookingpage_url") {
		return "bookingpage_url"
	}
	if strings.Contains(msg, "email") {
		return "email"
	}
	return ""
}
