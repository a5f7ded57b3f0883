package models

// Service is a catalog entry, independent of any pro. Pros offer it through
// a ProService row carrying their own duration and price.
type Service struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Specialization string `json:"specialization"`
	ServiceName    string `json:"service_name"`
	ServiceType    string `json:"service_type"`
}
