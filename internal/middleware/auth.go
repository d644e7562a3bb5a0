package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/auth"
	"clinic-app-server/internal/config"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// AuthMiddleware authenticates the request from the session cookie. A
// bearer Authorization header is accepted as a fallback for non-browser
// clients. The server-side session row must still be live; a revoked
// session fails even with a well-signed cookie.
func AuthMiddleware(cfg *config.Config, sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString, cfg.Session.Secret)
		if err != nil {
			utils.Unauthorized(c, "Invalid session")
			c.Abort()
			return
		}

		valid, err := sessions.Valid(claims.SessionID)
		if err != nil {
			utils.InternalServerError(c, "Session lookup failed")
			c.Abort()
			return
		}
		if !valid {
			utils.Unauthorized(c, "Session expired or revoked")
			c.Abort()
			return
		}

		// Set user information in context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("clinicID", claims.ClinicID)
		c.Set("sessionID", claims.SessionID)

		c.Next()
	}
}

// RequirePermission gates a route on a capability. It should be used
// *after* AuthMiddleware.
func RequirePermission(perm auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			utils.InternalServerError(c, "User role not found in context. AuthMiddleware might be missing.")
			c.Abort()
			return
		}

		if !auth.RoleHas(role, perm) {
			utils.Forbidden(c, "You do not have permission to access this resource.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	idStr, ok := userID.(string)
	return idStr, ok
}

// GetUserRoleFromContext returns the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (models.Role, bool) {
	userRole, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	role, ok := userRole.(models.Role)
	return role, ok
}

// GetClinicIDFromContext returns the tenant scope of the session.
// Super-admins carry an empty clinic and may select one per request via
// the clinicId query parameter.
func GetClinicIDFromContext(c *gin.Context) (string, bool) {
	clinicID, exists := c.Get("clinicID")
	if !exists {
		return "", false
	}
	idStr, ok := clinicID.(string)
	if idStr == "" {
		if role, _ := GetUserRoleFromContext(c); role == models.RoleSuperAdmin {
			if q := c.Query("clinicId"); q != "" {
				return q, true
			}
		}
		return "", false
	}
	return idStr, ok
}

// GetSessionIDFromContext returns the session row ID.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	idStr, ok := sessionID.(string)
	return idStr, ok
}
