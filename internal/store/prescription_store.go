package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// PrescriptionStore persists prescriptions with their items.
type PrescriptionStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewPrescriptionStore creates a PrescriptionStore.
func NewPrescriptionStore(db *gorm.DB, log zerolog.Logger) *PrescriptionStore {
	return &PrescriptionStore{db: db, log: log.With().Str("store", "prescription").Logger()}
}

// Create inserts a prescription and its items in one transaction
// (gorm saves the association rows with the parent).
func (s *PrescriptionStore) Create(prescription *models.Prescription) error {
	if err := s.db.Create(prescription).Error; err != nil {
		return err
	}
	s.log.Info().
		Str("prescription_id", prescription.ID).
		Str("patient_id", prescription.PatientID).
		Int("items", len(prescription.Items)).
		Msg("prescription created")
	return nil
}

// Get fetches one prescription with items.
func (s *PrescriptionStore) Get(id string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := s.db.Preload("Items").First(&prescription, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

// ListByPatient returns a patient's prescriptions, newest first.
func (s *PrescriptionStore) ListByPatient(clinicID, patientID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := s.db.
		Preload("Items").
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
