package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WishlistItem links a user to a saved laptop with a snapshot of the listing
// taken when it was added.
type WishlistItem struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index:wishlist_items_user_id_idx;uniqueIndex:wishlist_items_user_product_key"`
	ProductID    uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:wishlist_items_user_product_key"`
	ProductName  string          `gorm:"column:product_name;not null"`
	ProductPrice decimal.Decimal `gorm:"column:product_price;type:numeric(12,2);not null"`
	ProductImage *string         `gorm:"column:product_image"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}
