package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jordanhale/lapstore-backend/internal/repo"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
)

// Repository encapsulates catalog persistence for laptops, categories and banners.
type Repository struct {
	repo.Base
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: r.Base.WithTx(tx)}
}

// FindLaptopByID loads a single laptop row.
func (r *Repository) FindLaptopByID(ctx context.Context, id uuid.UUID) (*models.Laptop, error) {
	var laptop models.Laptop
	if err := r.DB(ctx).First(&laptop, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &laptop, nil
}

// ListFilter narrows the laptop listing.
type ListFilter struct {
	CategoryID   *uuid.UUID
	FeaturedOnly bool
	ActiveOnly   bool
}

// ListLaptops returns laptops matching the filter, newest first.
func (r *Repository) ListLaptops(ctx context.Context, filter ListFilter) ([]models.Laptop, error) {
	query := r.DB(ctx).Model(&models.Laptop{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var laptops []models.Laptop
	if err := query.Order("created_at DESC").Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

// CreateLaptop persists a new listing.
func (r *Repository) CreateLaptop(ctx context.Context, laptop *models.Laptop) error {
	return r.DB(ctx).Create(laptop).Error
}

// UpdateLaptop applies the provided column updates to an existing listing.
func (r *Repository) UpdateLaptop(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.DB(ctx).
		Model(&models.Laptop{}).
		Where("id = ?", id).
		Updates(updates).
		Error
}

// DeleteLaptop removes a listing; dependent cart/wishlist rows cascade.
func (r *Repository) DeleteLaptop(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Laptop{})
	return res.RowsAffected, res.Error
}

// ListCategories returns all categories ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory persists a new category.
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.DB(ctx).Create(category).Error
}

// DeleteCategory removes a category; laptops keep a null category afterwards.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Category{})
	return res.RowsAffected, res.Error
}

// ListBanners returns active banners in display order.
func (r *Repository) ListBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.DB(ctx).
		Where("is_active = ?", true).
		Order("position ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// CreateBanner persists a new banner slot.
func (r *Repository) CreateBanner(ctx context.Context, banner *models.Banner) error {
	return r.DB(ctx).Create(banner).Error
}

// DeleteBanner removes a banner.
func (r *Repository) DeleteBanner(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Banner{})
	return res.RowsAffected, res.Error
}
