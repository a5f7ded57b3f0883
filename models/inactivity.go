package models

// InactivityDays is a pro's blackout period. Only the starting date is
// mandatory; hour bounds narrow the blackout to part of a day.
type InactivityDays struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	StartingDate string `json:"starting_date"`
	EndingDate   string `json:"ending_date"`
	StartingHour string `json:"starting_hour"`
	EndingHour   string `json:"ending_hour"`
	Title        string `json:"title"`
	ProID        uint   `json:"pro_id"`
}
