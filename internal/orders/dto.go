package orders

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jordanhale/lapstore-backend/pkg/enums"
)

// CreateOrderInput is the order-submission payload. Monetary fields are
// persisted exactly as supplied; the service does not recompute them against
// the cart or catalog.
type CreateOrderInput struct {
	ShippingName    string           `json:"shipping_name" validate:"required"`
	ShippingPhone   *string          `json:"shipping_phone"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
	ShippingCity    string           `json:"shipping_city" validate:"required"`
	ShippingZip     *string          `json:"shipping_zip"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	Tax             decimal.Decimal  `json:"tax"`
	ShippingCost    decimal.Decimal  `json:"shipping_cost"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	Items           []OrderItemInput `json:"items"`
}

// OrderItemInput mirrors one snapshotted product line.
type OrderItemInput struct {
	ProductID   uuid.UUID       `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Actor identifies the authenticated caller for visibility scoping.
type Actor struct {
	UserID uuid.UUID
	Role   enums.UserRole
}

// Stats is the admin dashboard overview aggregate.
type Stats struct {
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	CompletedOrders int64           `json:"completed_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}
