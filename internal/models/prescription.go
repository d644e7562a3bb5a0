package models

// Prescription groups the items a doctor prescribed in one encounter.
type Prescription struct {
	BaseModel
	ClinicID        string `gorm:"size:36;index" json:"clinicId"`
	PatientID       string `gorm:"size:36;index" json:"patientId"`
	DoctorID        string `gorm:"size:36;index" json:"doctorId"`
	MedicalRecordID string `gorm:"size:36;index" json:"medicalRecordId,omitempty"`
	Notes           string `gorm:"type:text" json:"notes,omitempty"`

	Items []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"-"`
}

// PrescriptionItem is a single prescribed drug with posology.
type PrescriptionItem struct {
	BaseModel
	PrescriptionID string `gorm:"size:36;index" json:"prescriptionId"`
	Drug           string `gorm:"size:255;not null" json:"drug"`
	Dosage         string `gorm:"size:100" json:"dosage"`
	Frequency      string `gorm:"size:100" json:"frequency"`
	Duration       string `gorm:"size:100" json:"duration"`
	Instructions   string `gorm:"type:text" json:"instructions,omitempty"`
}
