package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/scheduling"
)

// MedicalRecordStore persists clinical encounters and owns the finalize
// cascade: a record finalized against an appointment marks that
// appointment finalizado in the same transaction, so a failure on
// either side rolls back both writes.
type MedicalRecordStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewMedicalRecordStore creates a MedicalRecordStore.
func NewMedicalRecordStore(db *gorm.DB, log zerolog.Logger) *MedicalRecordStore {
	return &MedicalRecordStore{db: db, log: log.With().Str("store", "medical_record").Logger()}
}

// Get fetches one medical record.
func (s *MedicalRecordStore) Get(id string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := s.db.First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByPatient returns a patient's records, newest first.
func (s *MedicalRecordStore) ListByPatient(clinicID, patientID string) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := s.db.
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a record. A record arriving already finalizado runs
// the appointment cascade inside the insert transaction.
func (s *MedicalRecordStore) Create(record *models.MedicalRecord) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		if record.Status == models.RecordFinal {
			return s.cascadeComplete(tx, record)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().
		Str("record_id", record.ID).
		Str("patient_id", record.PatientID).
		Str("status", string(record.Status)).
		Msg("medical record created")
	return nil
}

// Update applies field changes to a draft record. Finalized records are
// immutable. Passing status finalizado finalizes the record and runs
// the appointment cascade transactionally.
func (s *MedicalRecordStore) Update(id string, fields map[string]interface{}) (*models.MedicalRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if record.Status == models.RecordFinal {
		return nil, ErrRecordFinal
	}

	finalizing := fields["status"] == models.RecordFinal || fields["status"] == string(models.RecordFinal)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(record).Updates(fields).Error; err != nil {
			return err
		}
		if finalizing {
			return s.cascadeComplete(tx, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// UpdateVitals writes the triage vitals block onto a draft record.
func (s *MedicalRecordStore) UpdateVitals(id string, vitals models.Vitals) (*models.MedicalRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if record.Status == models.RecordFinal {
		return nil, ErrRecordFinal
	}

	if err := s.db.Model(record).Updates(map[string]interface{}{
		"vitals_systolic_bp":  vitals.SystolicBP,
		"vitals_diastolic_bp": vitals.DiastolicBP,
		"vitals_heart_rate":   vitals.HeartRate,
		"vitals_resp_rate":    vitals.RespRate,
		"vitals_temp_deci_c":  vitals.TempDeciC,
		"vitals_sp_o2":        vitals.SpO2,
		"vitals_weight_grams": vitals.WeightGrams,
		"vitals_height_mm":    vitals.HeightMM,
	}).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// cascadeComplete forces the linked appointment to finalizado. Only
// legal from chegou or em_atendimento; anything else fails the
// surrounding transaction so the record write rolls back too.
func (s *MedicalRecordStore) cascadeComplete(tx *gorm.DB, record *models.MedicalRecord) error {
	if record.AppointmentID == "" {
		return nil
	}

	var appointment models.Appointment
	err := tx.First(&appointment, "id = ?", record.AppointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !scheduling.CanComplete(appointment.Status) {
		return scheduling.ErrInvalidTransition
	}

	return tx.Model(&appointment).Update("status", models.StatusCompleted).Error
}
