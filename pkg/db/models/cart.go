package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart holds one user's open line items. TotalAmount and TotalItems are
// derived columns, recomputed from the persisted item set after every
// mutation rather than adjusted incrementally.
type Cart struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"column:user_id;type:uuid;not null;uniqueIndex:carts_user_id_key"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null;default:0"`
	TotalItems  int             `gorm:"column:total_items;not null;default:0"`
	Items       []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
