package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jordanhale/lapstore-backend/internal/repo"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
)

// Repository encapsulates cart and cart item persistence.
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

// FindByUser loads the user's cart with items eagerly joined, oldest item first.
func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		First(&cart, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create persists an empty cart shell.
func (r *Repository) Create(ctx context.Context, cart *models.Cart) error {
	return r.DB(ctx).Create(cart).Error
}

// FindItem loads a cart item scoped to the owning cart.
func (r *Repository) FindItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB(ctx).
		First(&item, "id = ? AND cart_id = ?", itemID, cartID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemByProduct returns the cart's line for a product, if present.
func (r *Repository) FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB(ctx).
		First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns the cart's current persisted item set.
func (r *Repository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem inserts a new line item.
func (r *Repository) CreateItem(ctx context.Context, item *models.CartItem) error {
	return r.DB(ctx).Create(item).Error
}

// UpdateItemQuantity overwrites quantity and the recomputed line total.
func (r *Repository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int, totalPrice decimal.Decimal) error {
	return r.DB(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"quantity":    quantity,
			"total_price": totalPrice,
		}).Error
}

// DeleteItem removes a single line item.
func (r *Repository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.DB(ctx).
		Where("id = ?", itemID).
		Delete(&models.CartItem{}).Error
}

// DeleteItemsByCart removes every line item owned by the cart.
func (r *Repository) DeleteItemsByCart(ctx context.Context, cartID uuid.UUID) error {
	return r.DB(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}

// UpdateTotals overwrites the cart's derived totals.
func (r *Repository) UpdateTotals(ctx context.Context, cartID uuid.UUID, totalAmount decimal.Decimal, totalItems int) error {
	return r.DB(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"total_amount": totalAmount,
			"total_items":  totalItems,
		}).Error
}
