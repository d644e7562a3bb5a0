package models

// AvailabilityException is a per-doctor, per-date override. Absence of a
// row means the doctor is available.
type AvailabilityException struct {
	BaseModel
	ClinicID    string `gorm:"size:36;index:idx_availability_key" json:"clinicId"`
	DoctorID    string `gorm:"size:36;index:idx_availability_key" json:"doctorId"`
	Date        string `gorm:"size:10;index:idx_availability_key" json:"date"`
	IsAvailable bool   `gorm:"default:false" json:"isAvailable"`
	Reason      string `gorm:"size:255" json:"reason,omitempty"`

	Doctor User `gorm:"foreignKey:DoctorID" json:"-"`
}
