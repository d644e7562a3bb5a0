package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "agendado"
	StatusConfirmed  AppointmentStatus = "confirmado"
	StatusArrived    AppointmentStatus = "chegou"
	StatusInProgress AppointmentStatus = "em_atendimento"
	StatusCompleted  AppointmentStatus = "finalizado"
	StatusCanceled   AppointmentStatus = "cancelado"
)

// AppointmentType distinguishes consultations, returns and exams.
type AppointmentType string

const (
	TypeConsultation AppointmentType = "consulta"
	TypeReturn       AppointmentType = "retorno"
	TypeExam         AppointmentType = "exame"
)

// Appointment represents a scheduled encounter. Date and StartTime are
// kept as wall-clock strings (YYYY-MM-DD / HH:MM) so listings sort
// lexically and never shift across timezones. Price is integer cents.
type Appointment struct {
	BaseModel
	ClinicID        string            `gorm:"size:36;index" json:"clinicId"`
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
	DoctorID        string            `gorm:"size:36;index" json:"doctorId"`
	Date            string            `gorm:"size:10;index" json:"date"`
	StartTime       string            `gorm:"size:5" json:"startTime"`
	DurationMinutes int               `gorm:"default:30" json:"durationMinutes"`
	Status          AppointmentStatus `gorm:"size:20;default:'agendado'" json:"status"`
	Type            AppointmentType   `gorm:"size:20;default:'consulta'" json:"type"`
	ExamLabel       string            `gorm:"size:255" json:"examLabel,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	PriceCents      int64             `gorm:"default:0" json:"priceCents"`
	Insurance       bool              `gorm:"default:false" json:"insurance"`
	PaymentMethod   string            `gorm:"size:20" json:"paymentMethod,omitempty"`
	PaymentStatus   string            `gorm:"size:20" json:"paymentStatus,omitempty"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}
