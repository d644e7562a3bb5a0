package models

// Clinic is a tenant organizational unit. Every patient, staff account
// and appointment belongs to exactly one clinic.
type Clinic struct {
	BaseModel
	Name    string `gorm:"size:255;not null" json:"name"`
	CNPJ    string `gorm:"size:18;uniqueIndex" json:"cnpj"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
	Active  bool   `gorm:"default:true" json:"active"`
}
