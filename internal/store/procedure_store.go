package store

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// ProcedureStore persists the clinic's TUSS price table.
type ProcedureStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewProcedureStore creates a ProcedureStore.
func NewProcedureStore(db *gorm.DB, log zerolog.Logger) *ProcedureStore {
	return &ProcedureStore{db: db, log: log.With().Str("store", "procedure").Logger()}
}

// List returns the clinic's procedures ordered by code.
func (s *ProcedureStore) List(clinicID string) ([]models.Procedure, error) {
	var procedures []models.Procedure
	err := s.db.Where("clinic_id = ?", clinicID).Order("tuss_code ASC").Find(&procedures).Error
	if err != nil {
		return nil, err
	}
	return procedures, nil
}

// Create inserts a procedure.
func (s *ProcedureStore) Create(procedure *models.Procedure) error {
	return s.db.Create(procedure).Error
}
