package models

// Patient is a clinic-scoped demographic record.
type Patient struct {
	BaseModel
	ClinicID      string `gorm:"size:36;index" json:"clinicId"`
	FullName      string `gorm:"size:255;not null" json:"fullName"`
	CPF           string `gorm:"size:14;index" json:"cpf"`
	BirthDate     string `gorm:"size:10" json:"birthDate"` // YYYY-MM-DD
	Sex           string `gorm:"size:1" json:"sex"`
	Phone         string `gorm:"size:20" json:"phone"`
	Email         string `gorm:"size:255" json:"email"`
	Address       string `gorm:"size:255" json:"address"`
	InsuranceName string `gorm:"size:100" json:"insuranceName,omitempty"`
	InsuranceCard string `gorm:"size:50" json:"insuranceCard,omitempty"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`

	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"-"`
}
