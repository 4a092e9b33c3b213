package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem snapshots product name and unit price at the moment it is added.
// The unit price is never re-read from the catalog on later quantity updates.
type CartItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CartID      uuid.UUID       `gorm:"column:cart_id;type:uuid;not null;index:cart_items_cart_id_idx"`
	ProductID   uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	ProductName string          `gorm:"column:product_name;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
