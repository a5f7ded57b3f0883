package models

type Location struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Country  string `json:"country"`
	TimeZone string `json:"time_zone"`
	ProID    uint   `json:"pro_id"`

	Hours []Hours `json:"hours,omitempty" gorm:"foreignKey:LocationID"`
}
