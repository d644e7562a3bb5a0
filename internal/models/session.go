package models

import (
	"time"
)

// Session is a server-side login session row. The session ID travels in
// the signed cookie; revoking the row invalidates the cookie before its
// JWT expiry.
type Session struct {
	BaseModel
	UserID    string    `gorm:"size:36;index" json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
