package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jordanhale/lapstore-backend/pkg/enums"
)

// Order snapshots a submitted checkout. Monetary fields are supplied by the
// caller at creation and persisted as-is; they are not recomputed server-side.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	UserID          uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index:orders_user_id_idx"`
	OrderNumber     string            `gorm:"column:order_number;not null;index:orders_order_number_idx"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	ShippingName    string            `gorm:"column:shipping_name;not null"`
	ShippingPhone   *string           `gorm:"column:shipping_phone"`
	ShippingAddress string            `gorm:"column:shipping_address;not null"`
	ShippingCity    string            `gorm:"column:shipping_city;not null"`
	ShippingZip     *string           `gorm:"column:shipping_zip"`
	Subtotal        decimal.Decimal   `gorm:"column:subtotal;type:numeric(12,2);not null;default:0"`
	Tax             decimal.Decimal   `gorm:"column:tax;type:numeric(12,2);not null;default:0"`
	ShippingCost    decimal.Decimal   `gorm:"column:shipping_cost;type:numeric(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null;default:0"`
	User            *User             `gorm:"foreignKey:UserID"`
	Items           []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
