package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// OpenDB opens the MySQL connection and runs migrations. The handle is
// returned to the caller and passed down explicitly; there is no
// package-level instance.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs AutoMigrate for every model. Split out from OpenDB so
// tests can migrate an sqlite handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Clinic{},
		&User{},
		&Session{},
		&Patient{},
		&Appointment{},
		&AvailabilityException{},
		&MedicalRecord{},
		&Prescription{},
		&PrescriptionItem{},
		&InventoryItem{},
		&StockMovement{},
		&Procedure{},
	)
}
