package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jordanhale/lapstore-backend/internal/repo"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	"github.com/jordanhale/lapstore-backend/pkg/enums"
)

// Repository encapsulates order persistence.
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

// Create persists the order together with its item snapshots.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.DB(ctx).Create(order).Error
}

// List returns orders newest first, scoped to one user when userID is set.
func (r *Repository) List(ctx context.Context, userID *uuid.UUID) ([]models.Order, error) {
	q := r.DB(ctx).
		Preload("Items").
		Order("created_at DESC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStatus returns every order in the given status, newest first.
func (r *Repository) ListByStatus(ctx context.Context, status enums.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB(ctx).
		Preload("Items").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID loads one order with its items and owning user joined.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("Items").
		Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus overwrites the order status and reports how many rows matched.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (int64, error) {
	res := r.DB(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// Delete hard-deletes the order and its item snapshots.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := r.DB(ctx).
		Where("order_id = ?", id).
		Delete(&models.OrderItem{}).Error; err != nil {
		return 0, err
	}
	res := r.DB(ctx).
		Where("id = ?", id).
		Delete(&models.Order{})
	return res.RowsAffected, res.Error
}

// Stats aggregates the dashboard counters in the database. Revenue only counts
// orders in a revenue-bearing status.
func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	base := r.DB(ctx).Model(&models.Order{})
	if err := base.Session(&gorm.Session{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", enums.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", enums.OrderStatusDelivered).
		Count(&stats.CompletedOrders).Error; err != nil {
		return nil, err
	}

	var revenue struct {
		Total decimal.Decimal
	}
	err := r.DB(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status IN ?", enums.RevenueStatuses).
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue.Total

	return &stats, nil
}
