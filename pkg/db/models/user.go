package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jordanhale/lapstore-backend/pkg/enums"
)

// User is the identity read model. Account issuance lives with the identity
// provider; this service only scopes carts, orders and wishlists by it.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Email     string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	FirstName string         `gorm:"column:first_name;not null"`
	LastName  string         `gorm:"column:last_name;not null"`
	Role      enums.UserRole `gorm:"column:role;not null;default:'customer'"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
