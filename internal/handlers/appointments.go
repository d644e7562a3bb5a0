package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Appointments *store.AppointmentStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *store.AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments}
}

// ListAppointments returns the clinic's schedule, filtered by exact
// date or inclusive range, doctor and status. Canceled appointments are
// always excluded. Order is newest first; a "today's queue" view
// re-sorts client-side.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	filters := store.AppointmentFilters{
		Date:      c.Query("date"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		DoctorID:  c.Query("doctorId"),
		Status:    models.AppointmentStatus(c.Query("status")),
	}

	appointments, err := h.Appointments.List(clinicID, filters)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	PatientID       string `json:"patientId" binding:"required,uuid"`
	DoctorID        string `json:"doctorId" binding:"required,uuid"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime       string `json:"startTime" binding:"required,datetime=15:04"`
	DurationMinutes int    `json:"durationMinutes" binding:"omitempty,min=5,max=480"`
	Type            string `json:"type" binding:"omitempty,oneof=consulta retorno exame"`
	ExamLabel       string `json:"examLabel"`
	Notes           string `json:"notes"`
	PriceCents      int64  `json:"priceCents" binding:"omitempty,min=0"`
	Insurance       bool   `json:"insurance"`
}

// CreateAppointment books a new appointment in the session's clinic.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment := models.Appointment{
		ClinicID:        clinicID,
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          models.StatusScheduled,
		Type:            models.AppointmentType(req.Type),
		ExamLabel:       req.ExamLabel,
		Notes:           req.Notes,
		PriceCents:      req.PriceCents,
		Insurance:       req.Insurance,
	}
	if appointment.DurationMinutes == 0 {
		appointment.DurationMinutes = 30
	}
	if appointment.Type == "" {
		appointment.Type = models.TypeConsultation
	}

	if err := h.Appointments.Create(&appointment); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointment fetches a single appointment.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		utils.BadRequest(c, "Invalid Appointment ID format")
		return
	}

	appointment, err := h.Appointments.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if appointment.ClinicID != clinicID {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointmentRequest represents the request body for a full update.
type UpdateAppointmentRequest struct {
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime       string `json:"startTime" binding:"required,datetime=15:04"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=5,max=480"`
	Type            string `json:"type" binding:"required,oneof=consulta retorno exame"`
	ExamLabel       string `json:"examLabel"`
	Notes           string `json:"notes"`
	PriceCents      int64  `json:"priceCents" binding:"min=0"`
	Insurance       bool   `json:"insurance"`
}

// UpdateAppointment rewrites the editable fields. Last write wins.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Appointments.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Appointment not found")
		return
	}

	fields := map[string]interface{}{
		"date":             req.Date,
		"start_time":       req.StartTime,
		"duration_minutes": req.DurationMinutes,
		"type":             req.Type,
		"exam_label":       req.ExamLabel,
		"notes":            req.Notes,
		"price_cents":      req.PriceCents,
		"insurance":        req.Insurance,
	}
	appointment, err := h.Appointments.Update(c.Param("id"), fields)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Appointment updated successfully", appointment)
}

// UpdateAppointmentStatusRequest represents the request body for a
// status transition. Check-in carries the payment fields.
type UpdateAppointmentStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=agendado confirmado chegou em_atendimento finalizado cancelado"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=dinheiro cartao pix convenio"`
	PaymentStatus string `json:"paymentStatus" binding:"omitempty,oneof=pago pendente isento"`
}

// UpdateAppointmentStatus applies a status transition. Illegal moves
// are rejected with 409.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Appointments.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Appointment not found")
		return
	}

	appointment, err := h.Appointments.UpdateStatus(c.Param("id"), models.AppointmentStatus(req.Status), req.PaymentMethod, req.PaymentStatus)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Appointment status updated successfully", appointment)
}

// DeleteAppointment removes an appointment for good. Cancellation is
// the status transition; this is the hard delete behind the admin UI.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	existing, err := h.Appointments.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Appointment not found")
		return
	}

	if err := h.Appointments.Delete(c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Appointment deleted successfully", nil)
}
