package scheduling

import (
	"errors"

	"clinic-app-server/internal/models"
)

// ErrInvalidTransition is returned when a requested status change is
// not in the transition table. Handlers map it to HTTP 409.
var ErrInvalidTransition = errors.New("illegal appointment status transition")

// transitions is the server-side state machine for appointment status.
// finalizado and cancelado are terminal. A record finalized straight
// from check-in (walk-in without an explicit "em atendimento" step) is
// legal, hence chegou -> finalizado.
var transitions = map[models.AppointmentStatus]map[models.AppointmentStatus]bool{
	models.StatusScheduled: {
		models.StatusConfirmed: true,
		models.StatusArrived:   true,
		models.StatusCanceled:  true,
	},
	models.StatusConfirmed: {
		models.StatusArrived:  true,
		models.StatusCanceled: true,
	},
	models.StatusArrived: {
		models.StatusInProgress: true,
		models.StatusCompleted:  true,
		models.StatusCanceled:   true,
	},
	models.StatusInProgress: {
		models.StatusCompleted: true,
		models.StatusCanceled:  true,
	},
	models.StatusCompleted: {},
	models.StatusCanceled:  {},
}

// CanTransition reports whether moving from one status to another is
// legal. Unknown source statuses are rejected.
func CanTransition(from, to models.AppointmentStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}

// IsTerminal reports whether no further transition can leave the status.
func IsTerminal(s models.AppointmentStatus) bool {
	allowed, ok := transitions[s]
	return ok && len(allowed) == 0
}

// CanComplete reports whether the finalize cascade from a medical
// record may mark an appointment finalizado from its current status.
func CanComplete(current models.AppointmentStatus) bool {
	return CanTransition(current, models.StatusCompleted)
}
