package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// PatientHandler handles the patient directory.
type PatientHandler struct {
	Patients *store.PatientStore
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients *store.PatientStore) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

// ListPatients returns the clinic's patients.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	patients, err := h.Patients.List(clinicID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Patients fetched successfully", patients)
}

// SearchPatients matches name or CPF by substring.
func (h *PatientHandler) SearchPatients(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	query := c.Query("q")
	if query == "" {
		utils.BadRequest(c, "q is required")
		return
	}

	patients, err := h.Patients.Search(clinicID, query)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatient fetches one patient.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	patient, err := h.Patients.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if patient.ClinicID != clinicID {
		utils.NotFound(c, "Patient not found")
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// PatientRequest represents the create/update body for a patient.
type PatientRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	CPF           string `json:"cpf" binding:"omitempty,min=11,max=14"`
	BirthDate     string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Sex           string `json:"sex" binding:"omitempty,oneof=M F"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	InsuranceName string `json:"insuranceName"`
	InsuranceCard string `json:"insuranceCard"`
	Notes         string `json:"notes"`
}

// CreatePatient registers a patient in the session's clinic.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		ClinicID:      clinicID,
		FullName:      req.FullName,
		CPF:           req.CPF,
		BirthDate:     req.BirthDate,
		Sex:           req.Sex,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		InsuranceName: req.InsuranceName,
		InsuranceCard: req.InsuranceCard,
		Notes:         req.Notes,
	}
	if err := h.Patients.Create(&patient); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Patient created successfully", patient)
}

// UpdatePatient rewrites a patient's demographic fields.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Patients.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Patient not found")
		return
	}

	fields := map[string]interface{}{
		"full_name":      req.FullName,
		"cpf":            req.CPF,
		"birth_date":     req.BirthDate,
		"sex":            req.Sex,
		"phone":          req.Phone,
		"email":          req.Email,
		"address":        req.Address,
		"insurance_name": req.InsuranceName,
		"insurance_card": req.InsuranceCard,
		"notes":          req.Notes,
	}
	patient, err := h.Patients.Update(c.Param("id"), fields)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient removes a patient row.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	existing, err := h.Patients.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Patient not found")
		return
	}

	if err := h.Patients.Delete(c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Patient deleted successfully", nil)
}
