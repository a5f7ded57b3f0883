package models

type Patient struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email" gorm:"unique"`
	Phone    string `json:"phone"`

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:PatientID"`
}
