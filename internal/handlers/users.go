package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// UserHandler handles staff account management.
type UserHandler struct {
	Users *store.UserStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

func sanitizeAll(users []models.User) []models.UserSanitized {
	out := make([]models.UserSanitized, 0, len(users))
	for i := range users {
		out = append(out, users[i].Sanitize())
	}
	return out
}

// GetUsers lists the clinic's staff.
func (h *UserHandler) GetUsers(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	users, err := h.Users.List(clinicID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Users fetched successfully", sanitizeAll(users))
}

// GetDoctors lists the clinic's active doctors, for schedule pickers.
func (h *UserHandler) GetDoctors(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	doctors, err := h.Users.Doctors(clinicID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Doctors fetched successfully", sanitizeAll(doctors))
}

// GetUserByID fetches one staff account.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	user, err := h.Users.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if user.ClinicID != clinicID {
		utils.NotFound(c, "User not found")
		return
	}
	utils.Success(c, "User fetched successfully", user.Sanitize())
}

// CreateUserRequest represents the request body for creating a staff
// account.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FullName  string `json:"fullName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=admin medico recepcao enfermagem"`
	CRM       string `json:"crm"`
	Specialty string `json:"specialty"`
}

// CreateUser registers a staff account in the session's clinic.
func (h *UserHandler) CreateUser(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user := models.User{
		ClinicID:  clinicID,
		Email:     req.Email,
		FullName:  req.FullName,
		Role:      models.Role(req.Role),
		CRM:       req.CRM,
		Specialty: req.Specialty,
		Active:    true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.Users.Create(&user); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "User created successfully", user.Sanitize())
}

// UpdateUserRequest represents the request body for updating a staff
// account.
type UpdateUserRequest struct {
	FullName  string `json:"fullName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=admin medico recepcao enfermagem"`
	CRM       string `json:"crm"`
	Specialty string `json:"specialty"`
	Active    bool   `json:"active"`
}

// UpdateUser rewrites a staff account's fields.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Users.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "User not found")
		return
	}

	fields := map[string]interface{}{
		"full_name": req.FullName,
		"role":      req.Role,
		"crm":       req.CRM,
		"specialty": req.Specialty,
		"active":    req.Active,
	}
	user, err := h.Users.Update(c.Param("id"), fields)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "User updated successfully", user.Sanitize())
}

// DeleteUser removes a staff account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	existing, err := h.Users.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "User not found")
		return
	}

	if err := h.Users.Delete(c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "User deleted successfully", nil)
}
