package models

type ProService struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProID     uint    `json:"pro_id"`
	ServiceID uint    `json:"service_id"`
	Duration  int     `json:"duration"`
	Price     float64 `json:"price"`

	Service  Service   `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ProServiceID"`
}
