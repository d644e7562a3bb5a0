package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// MedicalRecordHandler handles clinical encounter records.
type MedicalRecordHandler struct {
	Records *store.MedicalRecordStore
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(records *store.MedicalRecordStore) *MedicalRecordHandler {
	return &MedicalRecordHandler{Records: records}
}

// CreateMedicalRecordRequest represents the request body for creating a
// medical record. Status finalizado triggers the appointment cascade.
type CreateMedicalRecordRequest struct {
	PatientID      string         `json:"patientId" binding:"required,uuid"`
	AppointmentID  string         `json:"appointmentId" binding:"omitempty,uuid"`
	Status         string         `json:"status" binding:"omitempty,oneof=rascunho finalizado"`
	ChiefComplaint string         `json:"chiefComplaint"`
	Anamnesis      string         `json:"anamnesis"`
	PhysicalExam   string         `json:"physicalExam"`
	Diagnosis      string         `json:"diagnosis"`
	TreatmentPlan  string         `json:"treatmentPlan"`
	Vitals         *models.Vitals `json:"vitals"`
}

// CreateMedicalRecord creates a draft or finalized record. The signed-in
// doctor is the author.
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	doctorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	record := models.MedicalRecord{
		ClinicID:       clinicID,
		PatientID:      req.PatientID,
		DoctorID:       doctorID,
		AppointmentID:  req.AppointmentID,
		Status:         models.RecordStatus(req.Status),
		ChiefComplaint: req.ChiefComplaint,
		Anamnesis:      req.Anamnesis,
		PhysicalExam:   req.PhysicalExam,
		Diagnosis:      req.Diagnosis,
		TreatmentPlan:  req.TreatmentPlan,
	}
	if record.Status == "" {
		record.Status = models.RecordDraft
	}
	if req.Vitals != nil {
		record.Vitals = *req.Vitals
	}

	if err := h.Records.Create(&record); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Medical record created successfully", record)
}

// GetMedicalRecordsForPatient lists a patient's records, newest first.
func (h *MedicalRecordHandler) GetMedicalRecordsForPatient(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	patientID := c.Param("patientId")
	if _, err := uuid.Parse(patientID); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format")
		return
	}

	records, err := h.Records.ListByPatient(clinicID, patientID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Medical records fetched successfully", records)
}

// GetMedicalRecord fetches one record.
func (h *MedicalRecordHandler) GetMedicalRecord(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	record, err := h.Records.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if record.ClinicID != clinicID {
		utils.NotFound(c, "Medical record not found")
		return
	}
	utils.Success(c, "Medical record fetched successfully", record)
}

// UpdateMedicalRecordRequest represents the request body for updating a
// draft record.
type UpdateMedicalRecordRequest struct {
	Status         string `json:"status" binding:"omitempty,oneof=rascunho finalizado"`
	ChiefComplaint string `json:"chiefComplaint"`
	Anamnesis      string `json:"anamnesis"`
	PhysicalExam   string `json:"physicalExam"`
	Diagnosis      string `json:"diagnosis"`
	TreatmentPlan  string `json:"treatmentPlan"`
}

// UpdateMedicalRecord rewrites a draft record. Setting status to
// finalizado finalizes it and completes the linked appointment in the
// same transaction.
func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req UpdateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Records.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Medical record not found")
		return
	}

	fields := map[string]interface{}{
		"chief_complaint": req.ChiefComplaint,
		"anamnesis":       req.Anamnesis,
		"physical_exam":   req.PhysicalExam,
		"diagnosis":       req.Diagnosis,
		"treatment_plan":  req.TreatmentPlan,
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}

	record, err := h.Records.Update(c.Param("id"), fields)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Medical record updated successfully", record)
}

// UpdateVitalsRequest is the nurse triage payload.
type UpdateVitalsRequest struct {
	Vitals models.Vitals `json:"vitals" binding:"required"`
}

// UpdateVitals writes the triage vitals block onto a draft record.
func (h *MedicalRecordHandler) UpdateVitals(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req UpdateVitalsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Records.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Medical record not found")
		return
	}

	record, err := h.Records.UpdateVitals(c.Param("id"), req.Vitals)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Vitals recorded successfully", record)
}
