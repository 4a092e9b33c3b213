package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/jordanhale/lapstore-backend/pkg/types"
)

// Laptop is the canonical catalog listing. Cart, order and wishlist logic read
// it but never own it.
type Laptop struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Name        string            `gorm:"column:name;not null"`
	Slug        string            `gorm:"column:slug;not null;uniqueIndex"`
	Description *string           `gorm:"column:description"`
	Price       decimal.Decimal   `gorm:"column:price;type:numeric(12,2);not null"`
	Stock       int               `gorm:"column:stock;not null;default:0"`
	Specs       types.LaptopSpecs `gorm:"column:specs;type:jsonb;serializer:json"`
	Images      pq.StringArray    `gorm:"column:images;type:text[]"`
	CategoryID  *uuid.UUID        `gorm:"column:category_id;type:uuid"`
	IsFeatured  bool              `gorm:"column:is_featured;not null;default:false"`
	IsActive    bool              `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// FirstImage returns the leading image URL or empty when none exist.
func (l Laptop) FirstImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}
