package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/scheduling"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// storeError maps store and scheduling sentinel errors onto HTTP
// responses. Anything unrecognized is a 500.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTransition),
		errors.Is(err, store.ErrSlotTaken):
		utils.Conflict(c, err.Error())
	case errors.Is(err, store.ErrClinicMismatch),
		errors.Is(err, store.ErrRecordFinal),
		errors.Is(err, store.ErrInsufficientStock):
		utils.BadRequest(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}

// clinicScope resolves the tenant for the request, replying 403 itself
// when no clinic can be determined.
func clinicScope(c *gin.Context) (string, bool) {
	clinicID, ok := middleware.GetClinicIDFromContext(c)
	if !ok {
		utils.Forbidden(c, "No clinic scope for this session")
		return "", false
	}
	return clinicID, true
}
