package models

type Booking struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Date         string `json:"date"`
	StartingTime string `json:"starting_time"`
	Status       string `json:"status"`
	ProNotes     string `json:"pro_notes"`
	PatientNotes string `json:"patient_notes"`
	ProServiceID uint   `json:"pro_service_id"`
	PatientID    uint   `json:"patient_id"`

	ProService ProService `json:"-" gorm:"foreignKey:ProServiceID"`
	Patient    Patient    `json:"-" gorm:"foreignKey:PatientID"`
}
