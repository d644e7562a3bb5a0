package store

import "errors"

// Sentinel errors surfaced by the stores. Handlers translate them to
// HTTP statuses: ErrNotFound -> 404, ErrSlotTaken -> 409, the rest 400.
var (
	ErrNotFound          = errors.New("record not found")
	ErrSlotTaken         = errors.New("doctor already booked for this slot")
	ErrClinicMismatch    = errors.New("patient and doctor must belong to the appointment's clinic")
	ErrRecordFinal       = errors.New("medical record is finalized")
	ErrInsufficientStock = errors.New("insufficient stock for movement")
)
