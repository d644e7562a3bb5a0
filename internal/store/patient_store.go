package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// PatientStore persists the clinic-scoped patient directory.
type PatientStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewPatientStore creates a PatientStore.
func NewPatientStore(db *gorm.DB, log zerolog.Logger) *PatientStore {
	return &PatientStore{db: db, log: log.With().Str("store", "patient").Logger()}
}

// List returns all patients of a clinic ordered by name.
func (s *PatientStore) List(clinicID string) ([]models.Patient, error) {
	var patients []models.Patient
	err := s.db.Where("clinic_id = ?", clinicID).Order("full_name ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// Search matches name or CPF by substring.
func (s *PatientStore) Search(clinicID, query string) ([]models.Patient, error) {
	var patients []models.Patient
	like := "%" + query + "%"
	err := s.db.
		Where("clinic_id = ?", clinicID).
		Where("full_name LIKE ? OR cpf LIKE ?", like, like).
		Order("full_name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// Get fetches one patient.
func (s *PatientStore) Get(id string) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Create inserts a patient.
func (s *PatientStore) Create(patient *models.Patient) error {
	return s.db.Create(patient).Error
}

// Update applies a partial field update.
func (s *PatientStore) Update(id string, fields map[string]interface{}) (*models.Patient, error) {
	patient, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(patient).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a patient row. Hard delete.
func (s *PatientStore) Delete(id string) error {
	res := s.db.Delete(&models.Patient{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
