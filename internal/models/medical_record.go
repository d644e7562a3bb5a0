package models

// RecordStatus represents the lifecycle of a medical record.
type RecordStatus string

const (
	RecordDraft RecordStatus = "rascunho"
	RecordFinal RecordStatus = "finalizado"
)

// Vitals is the structured triage block recorded by nursing staff.
// All values are integers in fixed units to avoid float drift:
// temperature in tenths of a degree, weight in grams, height in mm.
type Vitals struct {
	SystolicBP   int `json:"systolicBp,omitempty"`
	DiastolicBP  int `json:"diastolicBp,omitempty"`
	HeartRate    int `json:"heartRate,omitempty"`
	RespRate     int `json:"respRate,omitempty"`
	TempDeciC    int `json:"tempDeciC,omitempty"`
	SpO2         int `json:"spo2,omitempty"`
	WeightGrams  int `json:"weightGrams,omitempty"`
	HeightMM     int `json:"heightMm,omitempty"`
}

// MedicalRecord is one row per clinical encounter. Finalizing a record
// linked to an appointment marks that appointment finalizado in the
// same transaction.
type MedicalRecord struct {
	BaseModel
	ClinicID      string       `gorm:"size:36;index" json:"clinicId"`
	PatientID     string       `gorm:"size:36;index" json:"patientId"`
	DoctorID      string       `gorm:"size:36;index" json:"doctorId"`
	AppointmentID string       `gorm:"size:36;index" json:"appointmentId,omitempty"`
	Status        RecordStatus `gorm:"size:20;default:'rascunho'" json:"status"`

	ChiefComplaint string `gorm:"type:text" json:"chiefComplaint,omitempty"`
	Anamnesis      string `gorm:"type:text" json:"anamnesis,omitempty"`
	PhysicalExam   string `gorm:"type:text" json:"physicalExam,omitempty"`
	Diagnosis      string `gorm:"type:text" json:"diagnosis,omitempty"`
	TreatmentPlan  string `gorm:"type:text" json:"treatmentPlan,omitempty"`

	Vitals Vitals `gorm:"embedded;embeddedPrefix:vitals_" json:"vitals"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"-"`
}
