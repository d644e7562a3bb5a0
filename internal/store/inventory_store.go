package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// InventoryStore persists stock items and their movement audit trail.
type InventoryStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewInventoryStore creates an InventoryStore.
func NewInventoryStore(db *gorm.DB, log zerolog.Logger) *InventoryStore {
	return &InventoryStore{db: db, log: log.With().Str("store", "inventory").Logger()}
}

// List returns the clinic's items ordered by name.
func (s *InventoryStore) List(clinicID string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.db.Where("clinic_id = ?", clinicID).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one item.
func (s *InventoryStore) Get(id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts an item.
func (s *InventoryStore) Create(item *models.InventoryItem) error {
	return s.db.Create(item).Error
}

// Update applies a partial field update (name, unit, minimum stock).
// Quantity changes go through AddMovement only.
func (s *InventoryStore) Update(id string, fields map[string]interface{}) (*models.InventoryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	delete(fields, "quantity_on_hand")
	if err := s.db.Model(item).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// AddMovement applies a stock delta and records the movement in one
// transaction. A delta that would drive the quantity negative is
// rejected.
func (s *InventoryStore) AddMovement(itemID string, delta int, reason, userID string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		newQuantity := item.QuantityOnHand + delta
		if newQuantity < 0 {
			return ErrInsufficientStock
		}

		if err := tx.Model(&item).Update("quantity_on_hand", newQuantity).Error; err != nil {
			return err
		}

		movement := models.StockMovement{
			ItemID: itemID,
			Delta:  delta,
			Reason: reason,
			UserID: userID,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("item_id", itemID).Int("delta", delta).Msg("stock movement applied")
	return &item, nil
}

// Movements returns an item's movement history, newest first.
func (s *InventoryStore) Movements(itemID string) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := s.db.Where("item_id = ?", itemID).Order("created_at DESC").Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}
