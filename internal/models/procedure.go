package models

// Procedure is a TUSS procedure code with the clinic's price table
// entry. Codes are stored as opaque reference data; claim submission is
// out of scope.
type Procedure struct {
	BaseModel
	ClinicID    string `gorm:"size:36;index" json:"clinicId"`
	TUSSCode    string `gorm:"size:20;index" json:"tussCode"`
	Description string `gorm:"size:255;not null" json:"description"`
	PriceCents  int64  `gorm:"default:0" json:"priceCents"`
}
