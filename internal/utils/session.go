package utils

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/models"
)

// SessionClaims is the payload of the session cookie. SessionID points
// at the server-side session row so logout can revoke the cookie.
type SessionClaims struct {
	UserID    string      `json:"user_id"`
	ClinicID  string      `json:"clinic_id"`
	Role      models.Role `json:"role"`
	SessionID string      `json:"session_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs the session claims for a logged-in user.
func GenerateSessionToken(user *models.User, sessionID string, cfg *config.Config) (string, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Session.TTLHours) * time.Hour)
	claims := &SessionClaims{
		UserID:    user.ID,
		ClinicID:  user.ClinicID,
		Role:      user.Role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Session.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// SetSessionCookie writes the httpOnly session cookie.
func SetSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	maxAge := cfg.Session.TTLHours * 3600
	c.SetCookie(cfg.Session.CookieName, token, maxAge, "/", "", cfg.Session.SecureCookie, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetCookie(cfg.Session.CookieName, "", -1, "/", "", cfg.Session.SecureCookie, true)
}
