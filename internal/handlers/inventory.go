package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/store"
	"clinic-app-server/internal/utils"
)

// InventoryHandler handles clinic stock.
type InventoryHandler struct {
	Inventory *store.InventoryStore
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventory *store.InventoryStore) *InventoryHandler {
	return &InventoryHandler{Inventory: inventory}
}

// ListItems returns the clinic's stock items.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	items, err := h.Inventory.List(clinicID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Inventory fetched successfully", items)
}

// ItemRequest represents the create/update body for a stock item.
type ItemRequest struct {
	Name         string `json:"name" binding:"required"`
	SKU          string `json:"sku"`
	Unit         string `json:"unit"`
	MinimumStock int    `json:"minimumStock" binding:"min=0"`
}

// CreateItem registers a stock item.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req ItemRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	item := models.InventoryItem{
		ClinicID:     clinicID,
		Name:         req.Name,
		SKU:          req.SKU,
		Unit:         req.Unit,
		MinimumStock: req.MinimumStock,
	}
	if err := h.Inventory.Create(&item); err != nil {
		storeError(c, err)
		return
	}
	utils.Created(c, "Inventory item created successfully", item)
}

// UpdateItem rewrites an item's descriptive fields. Quantity moves only
// through movements.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	var req ItemRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Inventory.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Inventory item not found")
		return
	}

	fields := map[string]interface{}{
		"name":          req.Name,
		"sku":           req.SKU,
		"unit":          req.Unit,
		"minimum_stock": req.MinimumStock,
	}
	item, err := h.Inventory.Update(c.Param("id"), fields)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Inventory item updated successfully", item)
}

// MovementRequest represents a stock delta.
type MovementRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// AddMovement applies a stock delta with its audit row.
func (h *InventoryHandler) AddMovement(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	var req MovementRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	existing, err := h.Inventory.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Inventory item not found")
		return
	}

	item, err := h.Inventory.AddMovement(c.Param("id"), req.Delta, req.Reason, userID)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Stock movement applied", item)
}

// ListMovements returns an item's movement history.
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	clinicID, ok := clinicScope(c)
	if !ok {
		return
	}

	existing, err := h.Inventory.Get(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if existing.ClinicID != clinicID {
		utils.NotFound(c, "Inventory item not found")
		return
	}

	movements, err := h.Inventory.Movements(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, "Movements fetched successfully", movements)
}
