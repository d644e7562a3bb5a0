package models

// InventoryItem is a clinic-scoped stock item.
type InventoryItem struct {
	BaseModel
	ClinicID       string `gorm:"size:36;index" json:"clinicId"`
	Name           string `gorm:"size:255;not null" json:"name"`
	SKU            string `gorm:"size:50;index" json:"sku"`
	Unit           string `gorm:"size:20" json:"unit"`
	QuantityOnHand int    `gorm:"default:0" json:"quantityOnHand"`
	MinimumStock   int    `gorm:"default:0" json:"minimumStock"`
}

// StockMovement is the audit trail behind QuantityOnHand. Delta is
// positive for restock, negative for consumption.
type StockMovement struct {
	BaseModel
	ItemID string `gorm:"size:36;index" json:"itemId"`
	Delta  int    `gorm:"not null" json:"delta"`
	Reason string `gorm:"size:255" json:"reason"`
	UserID string `gorm:"size:36" json:"userId"`

	Item InventoryItem `gorm:"foreignKey:ItemID" json:"-"`
}
