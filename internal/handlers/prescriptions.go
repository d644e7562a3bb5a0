package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// PrescriptionHandler handles doctor prescriptions.
type PrescriptionHandler struct {
	Prescriptions *store.PrescriptionStore
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(prescriptions *store.PrescriptionStore) *PrescriptionHandler {
	return &PrescriptionHandler{Prescriptions: prescriptions}
}

// PrescriptionItemRequest is one prescribed drug.
type PrescriptionItemRequest struct {
	Drug         string `json:"drug" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Frequency    string `json:"frequency" binding:"required"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// CreatePrescriptionRequest represents the request body for a new
// prescription.
type CreatePrescriptionRequest struct {
	PatientID       string                    `json:"patientId" binding:"required,uuid"`
	MedicalRecordID string                    `json:"medicalRecordId" binding:"omitempty,uuid"`
	Notes           string                    `json:"notes"`
	Items           []PrescriptionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreatePrescription writes a prescription authored by the signed-in
// doctor.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	doctorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prescription := models.Prescription{
		ClinicID:        clinicID,
		PatientID:       req.PatientID,
		DoctorID:        doctorID,
		MedicalRecordID: req.MedicalRecordID,
		Notes:           req.Notes,
	}
	for _, item := range req.Items {
		prescription.Items = append(prescription.Items, models.PrescriptionItem{
			Drug:         item.Drug,
			Dosage:       item.Dosage,
			Frequency:    item.Frequency,
			Duration:     item.Duration,
			Instructions: item.Instructions,
		})
	}

	if err := h.Prescriptions.Create(&prescription); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Prescription created successfully", prescription)
}

// GetPrescription fetches one prescription with its items.
func (h *PrescriptionHandler) GetPrescription(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	prescription, err := h.Prescriptions.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if prescription.ClinicID != clinicID {
		utils.NotFound(c, "Prescription not found")
		return
	}
	utils.Success(c, "Prescription fetched successfully", prescription)
}

// GetPrescriptionsForPatient lists a patient's prescriptions.
func (h *PrescriptionHandler) GetPrescriptionsForPatient(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	patientID := c.Param("patientId")
	if _, err := uuid.Parse(patientID); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format")
		return
	}

	prescriptions, err := h.Prescriptions.ListByPatient(clinicID, patientID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Prescriptions fetched successfully", prescriptions)
}
