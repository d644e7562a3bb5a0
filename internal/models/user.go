package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "medico"
	RoleReception  Role = "recepcao"
	RoleNurse      Role = "enfermagem"
)

// User represents a staff account. ClinicID is empty only for
// super-admins, who operate across tenants.
type User struct {
	BaseModel
	ClinicID  string `gorm:"size:36;index" json:"clinicId"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	FullName  string `gorm:"size:255;not null" json:"fullName"`
	Role      Role   `gorm:"size:20;default:'recepcao'" json:"role"`
	CRM       string `gorm:"size:20" json:"crm,omitempty"`
	Specialty string `gorm:"size:100" json:"specialty,omitempty"`
	Active    bool   `gorm:"default:true" json:"active"`

	// Relations (not always preloaded)
	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID        string    `json:"id"`
	ClinicID  string    `json:"clinicId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CRM       string    `json:"crm,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:        u.ID,
		ClinicID:  u.ClinicID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CRM:       u.CRM,
		Specialty: u.Specialty,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
