package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/scheduling"
)

// AppointmentFilters narrows a listing. Date wins over the range pair;
// the range is inclusive on both ends.
type AppointmentFilters struct {
	Date      string
	StartDate string
	EndDate   string
	DoctorID  string
	Status    models.AppointmentStatus
}

// AppointmentStore persists appointments and runs the booking policy.
type AppointmentStore struct {
	db           *gorm.DB
	log          zerolog.Logger
	allowOverlap bool
}

// NewAppointmentStore creates an AppointmentStore.
func NewAppointmentStore(db *gorm.DB, log zerolog.Logger, allowOverlap bool) *AppointmentStore {
	return &AppointmentStore{db: db, log: log.With().Str("store", "appointment").Logger(), allowOverlap: allowOverlap}
}

// List returns the clinic's appointments joined with patient and doctor,
// newest first (date DESC, start_time DESC). Canceled appointments never
// show up here, whatever the filters say.
func (s *AppointmentStore) List(clinicID string, f AppointmentFilters) ([]models.Appointment, error) {
	q := s.db.
		Where("clinic_id = ?", clinicID).
		Where("status <> ?", models.StatusCanceled)

	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	} else if f.StartDate != "" && f.EndDate != "" {
		q = q.Where("date BETWEEN ? AND ?", f.StartDate, f.EndDate)
	}
	if f.DoctorID != "" {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var appointments []models.Appointment
	err := q.Preload("Patient").Preload("Doctor").
		Order("date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// Get fetches one appointment with its patient and doctor.
func (s *AppointmentStore) Get(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Preload("Patient").Preload("Doctor").First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Create inserts a new appointment after checking that patient and
// doctor belong to the appointment's clinic, and, when the overlap
// policy is strict, that the slot is free.
func (s *AppointmentStore) Create(appointment *models.Appointment) error {
	var doctor models.User
	err := s.db.First(&doctor, "id = ? AND role = ?", appointment.DoctorID, models.RoleDoctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var patient models.Patient
	err = s.db.First(&patient, "id = ?", appointment.PatientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if doctor.ClinicID != appointment.ClinicID || patient.ClinicID != appointment.ClinicID {
		return ErrClinicMismatch
	}

	if err := s.checkSlot(appointment, ""); err != nil {
		return err
	}

	if err := s.db.Create(appointment).Error; err != nil {
		return err
	}
	s.log.Info().
		Str("appointment_id", appointment.ID).
		Str("doctor_id", appointment.DoctorID).
		Str("date", appointment.Date).
		Msg("appointment created")
	return nil
}

// Update applies a partial field update. Last write wins; there is no
// optimistic concurrency control.
func (s *AppointmentStore) Update(id string, fields map[string]interface{}) (*models.Appointment, error) {
	appointment, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	candidate := *appointment
	if v, ok := fields["date"].(string); ok {
		candidate.Date = v
	}
	if v, ok := fields["start_time"].(string); ok {
		candidate.StartTime = v
	}
	if v, ok := fields["duration_minutes"].(int); ok {
		candidate.DurationMinutes = v
	}
	if err := s.checkSlot(&candidate, id); err != nil {
		return nil, err
	}

	if err := s.db.Model(appointment).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// UpdateStatus applies a status transition, rejecting moves outside the
// transition table. Check-in may carry payment fields; all written in a
// single UPDATE.
func (s *AppointmentStore) UpdateStatus(id string, status models.AppointmentStatus, paymentMethod, paymentStatus string) (*models.Appointment, error) {
	appointment, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !scheduling.CanTransition(appointment.Status, status) {
		return nil, scheduling.ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": status}
	if paymentMethod != "" {
		updates["payment_method"] = paymentMethod
	}
	if paymentStatus != "" {
		updates["payment_status"] = paymentStatus
	}

	if err := s.db.Model(&models.Appointment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	s.log.Info().
		Str("appointment_id", id).
		Str("from", string(appointment.Status)).
		Str("to", string(status)).
		Msg("appointment status updated")
	return s.Get(id)
}

// Delete removes the appointment row. Hard delete.
func (s *AppointmentStore) Delete(id string) error {
	res := s.db.Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// checkSlot enforces the overlap policy. With AllowOverlap (the
// default) it is a no-op: double-booking is how the clinics absorb
// walk-ins.
func (s *AppointmentStore) checkSlot(appointment *models.Appointment, excludeID string) error {
	if s.allowOverlap {
		return nil
	}

	q := s.db.
		Where("doctor_id = ? AND date = ?", appointment.DoctorID, appointment.Date).
		Where("status <> ?", models.StatusCanceled)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var existing []models.Appointment
	if err := q.Find(&existing).Error; err != nil {
		return err
	}
	for _, other := range existing {
		overlap, err := scheduling.Overlaps(appointment.StartTime, appointment.DurationMinutes, other.StartTime, other.DurationMinutes)
		if err != nil {
			return err
		}
		if overlap {
			return ErrSlotTaken
		}
	}
	return nil
}
