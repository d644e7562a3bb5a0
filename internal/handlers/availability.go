package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// AvailabilityHandler handles doctor availability exceptions.
type AvailabilityHandler struct {
	Availability *store.AvailabilityStore
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(availability *store.AvailabilityStore) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: availability}
}

// ListExceptions returns exception rows for a doctor and date range.
func (h *AvailabilityHandler) ListExceptions(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	exceptions, err := h.Availability.List(clinicID, c.Query("doctorId"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Availability exceptions fetched successfully", exceptions)
}

// BlockDatesRequest represents a bulk block request.
type BlockDatesRequest struct {
	DoctorID string   `json:"doctorId" binding:"required,uuid"`
	Dates    []string `json:"dates" binding:"required,min=1,dive,datetime=2006-01-02"`
	Reason   string   `json:"reason"`
}

// BlockDates marks a doctor unavailable on each given date. Dates that
// already carry a block are skipped.
func (h *AvailabilityHandler) BlockDates(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req BlockDatesRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	inserted, err := h.Availability.BlockDates(clinicID, req.DoctorID, req.Dates, req.Reason)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Dates blocked", gin.H{"blocked": inserted})
}

// UnblockDatesRequest represents a bulk unblock request.
type UnblockDatesRequest struct {
	DoctorID string   `json:"doctorId" binding:"required,uuid"`
	Dates    []string `json:"dates" binding:"required,min=1,dive,datetime=2006-01-02"`
}

// UnblockDates deletes every exception row for the doctor on the given
// dates.
func (h *AvailabilityHandler) UnblockDates(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req UnblockDatesRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	removed, err := h.Availability.UnblockDates(clinicID, req.DoctorID, req.Dates)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Dates unblocked", gin.H{"removed": removed})
}

// CheckAvailability answers whether a doctor is open on a date. The
// check is advisory; booking does not consult it.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	doctorID := c.Query("doctorId")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		utils.BadRequest(c, "doctorId and date are required")
		return
	}

	available, err := h.Availability.CheckAvailability(clinicID, doctorID, date)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Availability checked", gin.H{"available": available})
}
