package models

import (
	"time"
)

// Pro is a service professional. The bookingpage URL doubles as the public
// username and must be unique, same as the email.
type Pro struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name"`
	Lastname       string `json:"lastname"`
	Email          string `json:"email" gorm:"unique"`
	Phone          string `json:"phone"`
	Password       string `json:"-"`
	BookingpageURL string `json:"bookingpage_url" gorm:"column:bookingpage_url;unique"`
	ConfigStatus   string `json:"config_status"`
	Subscription   string `json:"subscription"`
	Title          string `json:"title"`

	// Google Calendar credentials, only exposed through the token
	// projection endpoint.
	GoogleAccessToken   string    `json:"-"`
	GoogleAccessExpires time.Time `json:"-"`
	GoogleRefreshToken  string    `json:"-"`

	Locations      []Location       `json:"locations,omitempty" gorm:"foreignKey:ProID"`
	Hours          []Hours          `json:"hours,omitempty" gorm:"foreignKey:ProID"`
	ProServices    []ProService     `json:"pro_services,omitempty" gorm:"foreignKey:ProID"`
	InactivityDays []InactivityDays `json:"inactivity_days,omitempty" gorm:"foreignKey:ProID"`
}
