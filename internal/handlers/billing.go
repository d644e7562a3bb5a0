package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// BillingHandler serves the revenue summary and the TUSS price table.
type BillingHandler struct {
	Appointments *store.AppointmentStore
	Procedures   *store.ProcedureStore
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(appointments *store.AppointmentStore, procedures *store.ProcedureStore) *BillingHandler {
	return &BillingHandler{Appointments: appointments, Procedures: procedures}
}

// GetSummary aggregates appointment revenue over an inclusive date
// range. All amounts are integer cents.
func (h *BillingHandler) GetSummary(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		utils.BadRequest(c, "startDate and endDate are required")
		return
	}

	summary, err := h.Appointments.BillingSummary(clinicID, startDate, endDate)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Billing summary computed", summary)
}

// ListProcedures returns the clinic's TUSS price table.
func (h *BillingHandler) ListProcedures(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	procedures, err := h.Procedures.List(clinicID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Procedures fetched successfully", procedures)
}

// ProcedureRequest represents the create body for a procedure code.
type ProcedureRequest struct {
	TUSSCode    string `json:"tussCode" binding:"required"`
	Description string `json:"description" binding:"required"`
	PriceCents  int64  `json:"priceCents" binding:"min=0"`
}

// CreateProcedure adds a TUSS code to the clinic's price table.
func (h *BillingHandler) CreateProcedure(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req ProcedureRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	procedure := models.Procedure{
		ClinicID:    clinicID,
		TUSSCode:    req.TUSSCode,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	}
	if err := h.Procedures.Create(&procedure); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Procedure created successfully", procedure)
}
