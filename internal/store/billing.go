package store

import (
	"clinic-app-server/internal/models"
)

// BillingSummary aggregates appointment revenue over a date range.
// Everything is integer cents; formatting is the client's problem.
type BillingSummary struct {
	StartDate    string                         `json:"startDate"`
	EndDate      string                         `json:"endDate"`
	TotalCents   int64                          `json:"totalCents"`
	PaidCents    int64                          `json:"paidCents"`
	PendingCents int64                          `json:"pendingCents"`
	CountByType  map[models.AppointmentType]int `json:"countByType"`
	Appointments int                            `json:"appointments"`
}

// BillingSummary sums the clinic's non-canceled appointments in the
// inclusive range. Payment status "pago" counts as paid, anything else
// as pending.
func (s *AppointmentStore) BillingSummary(clinicID, startDate, endDate string) (*BillingSummary, error) {
	var appointments []models.Appointment
	err := s.db.
		Where("clinic_id = ?", clinicID).
		Where("status <> ?", models.StatusCanceled).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	summary := &BillingSummary{
		StartDate:   startDate,
		EndDate:     endDate,
		CountByType: make(map[models.AppointmentType]int),
	}
	for _, a := range appointments {
		summary.TotalCents += a.PriceCents
		if a.PaymentStatus == "pago" {
			summary.PaidCents += a.PriceCents
		} else {
			summary.PendingCents += a.PriceCents
		}
		summary.CountByType[a.Type]++
		summary.Appointments++
	}
	return summary, nil
}
