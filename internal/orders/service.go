package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jordanhale/lapstore-backend/internal/authz"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	"github.com/jordanhale/lapstore-backend/pkg/enums"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the order lifecycle. Status moves freely between any two
// valid values; the only guard is enum membership.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*models.Order, error)
	List(ctx context.Context, actor Actor) ([]models.Order, error)
	ListByStatus(ctx context.Context, status string) ([]models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo *Repository
	tx   txRunner
}

// NewService builds an order service backed by the provided stack.
func NewService(repo *Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// newOrderNumber mints a human-readable reference. Uniqueness is probabilistic,
// not enforced; collisions need two submissions in the same millisecond that
// also draw the same suffix.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), rand.IntN(1000))
}

// Create persists the submitted order as a snapshot. Amounts come from the
// caller and are stored without recomputation against the cart or catalog.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.ShippingName == "" || input.ShippingAddress == "" || input.ShippingCity == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping name, address and city are required")
	}

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		OrderNumber:     newOrderNumber(),
		Status:          enums.OrderStatusPending,
		ShippingName:    input.ShippingName,
		ShippingPhone:   input.ShippingPhone,
		ShippingAddress: input.ShippingAddress,
		ShippingCity:    input.ShippingCity,
		ShippingZip:     input.ShippingZip,
		Subtotal:        input.Subtotal,
		Tax:             input.Tax,
		ShippingCost:    input.ShippingCost,
		TotalAmount:     input.TotalAmount,
	}
	for _, line := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			TotalPrice:  line.TotalPrice,
		})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the actor's own orders, or every order when the actor may view
// all of them.
func (s *service) List(ctx context.Context, actor Actor) ([]models.Order, error) {
	if actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	var scope *uuid.UUID
	if !authz.Can(actor.Role, authz.CapViewAllOrders) {
		scope = &actor.UserID
	}
	orders, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
	}
	orders, err := s.repo.ListByStatus(ctx, parsed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders by status")
	}
	return orders, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

// UpdateStatus moves the order to any valid status. There is no transition
// graph; cancelled back to pending is as legal as pending to confirmed.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
	}

	affected, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		affected, err := s.repo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil
	})
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate order stats")
	}
	return stats, nil
}
