package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// ClinicStore persists tenants.
type ClinicStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewClinicStore creates a ClinicStore.
func NewClinicStore(db *gorm.DB, log zerolog.Logger) *ClinicStore {
	return &ClinicStore{db: db, log: log.With().Str("store", "clinic").Logger()}
}

// List returns all clinics.
func (s *ClinicStore) List() ([]models.Clinic, error) {
	var clinics []models.Clinic
	if err := s.db.Order("name ASC").Find(&clinics).Error; err != nil {
		return nil, err
	}
	return clinics, nil
}

// Get fetches one clinic.
func (s *ClinicStore) Get(id string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := s.db.First(&clinic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &clinic, nil
}

// Create inserts a clinic.
func (s *ClinicStore) Create(clinic *models.Clinic) error {
	if err := s.db.Create(clinic).Error; err != nil {
		return err
	}
	s.log.Info().Str("clinic_id", clinic.ID).Str("name", clinic.Name).Msg("clinic created")
	return nil
}

// Update applies a partial field update.
func (s *ClinicStore) Update(id string, fields map[string]interface{}) (*models.Clinic, error) {
	clinic, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(clinic).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}
