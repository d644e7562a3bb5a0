package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// AuthHandler handles login, logout and profile requests.
type AuthHandler struct {
	Users    *store.UserStore
	Sessions *store.SessionStore
	Cfg      *config.Config
	Log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *store.UserStore, sessions *store.SessionStore, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Cfg: cfg, Log: log}
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials, opens a session and sets the session
// cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Users.GetByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}
	if !user.Active {
		utils.Unauthorized(c, "Account is deactivated")
		return
	}

	session, err := h.Sessions.Create(user.ID, time.Duration(h.Cfg.Session.TTLHours)*time.Hour)
	if err != nil {
		utils.InternalServerError(c, "Failed to open session")
		return
	}

	token, err := utils.GenerateSessionToken(user, session.ID, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to sign session token")
		return
	}

	utils.SetSessionCookie(c, h.Cfg, token)
	h.Log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	utils.Success(c, "Login successful", user.Sanitize())
}

// Logout revokes the server-side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		if err := h.Sessions.Revoke(sessionID); err != nil {
			h.Log.Warn().Err(err).Str("session_id", sessionID).Msg("session revoke failed")
		}
	}
	utils.ClearSessionCookie(c, h.Cfg)
	utils.Success(c, "Logged out", nil)
}

// GetProfile returns the logged-in user.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.Users.Get(userID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Profile fetched successfully", user.Sanitize())
}
