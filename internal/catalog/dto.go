package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jordanhale/lapstore-backend/pkg/types"
)

// CreateLaptopInput carries the validated payload for a new listing.
type CreateLaptopInput struct {
	Name        string            `json:"name" validate:"required"`
	Slug        string            `json:"slug" validate:"required"`
	Description *string           `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Stock       int               `json:"stock" validate:"gte=0"`
	Specs       types.LaptopSpecs `json:"specs"`
	Images      []string          `json:"images"`
	CategoryID  *uuid.UUID        `json:"category_id"`
	IsFeatured  bool              `json:"is_featured"`
}

// UpdateLaptopInput carries optional field updates; nil means leave unchanged.
type UpdateLaptopInput struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Price       *decimal.Decimal   `json:"price"`
	Stock       *int               `json:"stock"`
	Specs       *types.LaptopSpecs `json:"specs"`
	Images      *[]string          `json:"images"`
	CategoryID  *uuid.UUID         `json:"category_id"`
	IsFeatured  *bool              `json:"is_featured"`
	IsActive    *bool              `json:"is_active"`
}

// CreateCategoryInput carries the payload for a new category.
type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
}

// CreateBannerInput carries the payload for a new banner slot.
type CreateBannerInput struct {
	Title    string  `json:"title" validate:"required"`
	ImageURL string  `json:"image_url" validate:"required,url"`
	LinkURL  *string `json:"link_url"`
	Position int     `json:"position"`
}
