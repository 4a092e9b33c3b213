package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jordanhale/lapstore-backend/internal/repo"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
)

// Repository encapsulates wishlist persistence.
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

// List returns the user's saved items, newest first.
func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.DB(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Exists reports whether the user already saved the product.
func (r *Repository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new saved item.
func (r *Repository) Create(ctx context.Context, item *models.WishlistItem) error {
	return r.DB(ctx).Create(item).Error
}

// DeleteByProduct removes the user's entry for a product and reports how many
// rows matched.
func (r *Repository) DeleteByProduct(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	res := r.DB(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	return res.RowsAffected, res.Error
}

// DeleteByUser drops the user's entire wishlist.
func (r *Repository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.DB(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WishlistItem{}).Error
}
