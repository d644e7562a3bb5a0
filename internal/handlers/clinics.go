package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// ClinicHandler handles tenant management. Super-admin only.
type ClinicHandler struct {
	Clinics *store.ClinicStore
}

// NewClinicHandler creates a new ClinicHandler.
func NewClinicHandler(clinics *store.ClinicStore) *ClinicHandler {
	return &ClinicHandler{Clinics: clinics}
}

// ListClinics returns all tenants.
func (h *ClinicHandler) ListClinics(c *gin.Context) {
	clinics, err := h.Clinics.List()
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Clinics fetched successfully", clinics)
}

// ClinicRequest represents the create/update body for a clinic.
type ClinicRequest struct {
	Name    string `json:"name" binding:"required"`
	CNPJ    string `json:"cnpj" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

// CreateClinic registers a new tenant.
func (h *ClinicHandler) CreateClinic(c *gin.Context) {
	var req ClinicRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	clinic := models.Clinic{
		Name:    req.Name,
		CNPJ:    req.CNPJ,
		Phone:   req.Phone,
		Address: req.Address,
		Active:  true,
	}
	if err := h.Clinics.Create(&clinic); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Clinic created successfully", clinic)
}

// UpdateClinic rewrites a tenant's fields.
func (h *ClinicHandler) UpdateClinic(c *gin.Context) {
	var req ClinicRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	fields := map[string]interface{}{
		"name":    req.Name,
		"cnpj":    req.CNPJ,
		"phone":   req.Phone,
		"address": req.Address,
		"active":  req.Active,
	}
	clinic, err := h.Clinics.Update(c.Param("id"), fields)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Clinic updated successfully", clinic)
}
