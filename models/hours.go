package models

// Hours is a raw working-hours rule for one pro, optionally scoped to a
// location. Times are stored as submitted ("HH:MM"); no slot computation
// happens here.
type Hours struct {
	ID                  uint    `json:"id" gorm:"primaryKey"`
	WorkingDay          string  `json:"working_day"`
	StartingHourMorning string  `json:"starting_hour_morning"`
	EndingHourMorning   string  `json:"ending_hour_morning"`
	StartingHourAfter   *string `json:"starting_hour_after"`
	EndingHourAfter     *string `json:"ending_hour_after"`
	LocationID          *uint   `json:"location_id"`
	ProID               uint    `json:"pro_id"`
}
