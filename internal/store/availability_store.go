package store

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// AvailabilityStore persists per-doctor date overrides. No row for a
// (clinic, doctor, date) triple means the doctor is available.
type AvailabilityStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewAvailabilityStore creates an AvailabilityStore.
func NewAvailabilityStore(db *gorm.DB, log zerolog.Logger) *AvailabilityStore {
	return &AvailabilityStore{db: db, log: log.With().Str("store", "availability").Logger()}
}

// CheckAvailability answers "is this doctor available on this date".
// When duplicate rows exist for the triple the oldest one wins, so the
// answer is stable across calls.
func (s *AvailabilityStore) CheckAvailability(clinicID, doctorID, date string) (bool, error) {
	var exceptions []models.AvailabilityException
	err := s.db.
		Where("clinic_id = ? AND doctor_id = ? AND date = ?", clinicID, doctorID, date).
		Order("created_at ASC").
		Limit(1).
		Find(&exceptions).Error
	if err != nil {
		return false, err
	}
	if len(exceptions) == 0 {
		return true, nil
	}
	return exceptions[0].IsAvailable, nil
}

// List returns the exception rows for a doctor in an inclusive date
// range, oldest date first.
func (s *AvailabilityStore) List(clinicID, doctorID, startDate, endDate string) ([]models.AvailabilityException, error) {
	q := s.db.Where("clinic_id = ?", clinicID)
	if doctorID != "" {
		q = q.Where("doctor_id = ?", doctorID)
	}
	if startDate != "" && endDate != "" {
		q = q.Where("date BETWEEN ? AND ?", startDate, endDate)
	}

	var exceptions []models.AvailabilityException
	if err := q.Order("date ASC").Find(&exceptions).Error; err != nil {
		return nil, err
	}
	return exceptions, nil
}

// BlockDates inserts one unavailable row per date, skipping dates that
// already carry a block. Inserts run one by one; a mid-list failure
// leaves the earlier dates blocked and reports how many were written.
func (s *AvailabilityStore) BlockDates(clinicID, doctorID string, dates []string, reason string) (int, error) {
	inserted := 0
	for _, date := range dates {
		var count int64
		err := s.db.Model(&models.AvailabilityException{}).
			Where("clinic_id = ? AND doctor_id = ? AND date = ? AND is_available = ?", clinicID, doctorID, date, false).
			Count(&count).Error
		if err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}

		exception := models.AvailabilityException{
			ClinicID:    clinicID,
			DoctorID:    doctorID,
			Date:        date,
			IsAvailable: false,
			Reason:      reason,
		}
		if err := s.db.Create(&exception).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	s.log.Info().Str("doctor_id", doctorID).Int("dates", inserted).Msg("dates blocked")
	return inserted, nil
}

// UnblockDates deletes every exception row matching the doctor and the
// given dates, returning the number of rows removed.
func (s *AvailabilityStore) UnblockDates(clinicID, doctorID string, dates []string) (int64, error) {
	res := s.db.
		Where("clinic_id = ? AND doctor_id = ? AND date IN ?", clinicID, doctorID, dates).
		Delete(&models.AvailabilityException{})
	if res.Error != nil {
		return 0, res.Error
	}
	s.log.Info().Str("doctor_id", doctorID).Int64("rows", res.RowsAffected).Msg("dates unblocked")
	return res.RowsAffected, nil
}
