package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// UserStore persists staff accounts.
type UserStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewUserStore creates a UserStore.
func NewUserStore(db *gorm.DB, log zerolog.Logger) *UserStore {
	return &UserStore{db: db, log: log.With().Str("store", "user").Logger()}
}

// List returns the clinic's staff.
func (s *UserStore) List(clinicID string) ([]models.User, error) {
	var users []models.User
	err := s.db.Where("clinic_id = ?", clinicID).Order("full_name ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Doctors returns the clinic's active doctors.
func (s *UserStore) Doctors(clinicID string) ([]models.User, error) {
	var doctors []models.User
	err := s.db.
		Where("clinic_id = ? AND role = ? AND active = ?", clinicID, models.RoleDoctor, true).
		Order("full_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// Get fetches one user by ID.
func (s *UserStore) Get(id string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches one user by email.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user. The password must already be hashed via
// User.SetPassword.
func (s *UserStore) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return err
	}
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	return nil
}

// Update applies a partial field update.
func (s *UserStore) Update(id string, fields map[string]interface{}) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a user row.
func (s *UserStore) Delete(id string) error {
	res := s.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
