package store

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// SessionStore persists login sessions so cookies can be revoked
// server-side before their signed expiry.
type SessionStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewSessionStore creates a SessionStore.
func NewSessionStore(db *gorm.DB, log zerolog.Logger) *SessionStore {
	return &SessionStore{db: db, log: log.With().Str("store", "session").Logger()}
}

// Create opens a session for the user with the given lifetime.
func (s *SessionStore) Create(userID string, ttl time.Duration) (*models.Session, error) {
	session := models.Session{
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Valid reports whether the session exists, is not revoked and has not
// expired.
func (s *SessionStore) Valid(id string) (bool, error) {
	var session models.Session
	err := s.db.First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !session.Revoked && session.ExpiresAt.After(time.Now()), nil
}

// Revoke invalidates a session.
func (s *SessionStore) Revoke(id string) error {
	res := s.db.Model(&models.Session{}).Where("id = ?", id).Update("revoked", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
