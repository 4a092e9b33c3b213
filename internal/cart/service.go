package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLoader interface {
	FindLaptopByID(ctx context.Context, id uuid.UUID) (*models.Laptop, error)
}

// Service exposes the cart aggregate operations. Every mutation finishes with
// a full reload of the persisted item set and a recompute of the cart totals;
// totals are never adjusted incrementally, so they cannot drift from the
// stored items even when two requests interleave.
type Service interface {
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.Cart, error)
	UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) (*models.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
}

type service struct {
	repo    *Repository
	tx      txRunner
	catalog productLoader
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo *Repository, tx txRunner, catalog productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	return &service{repo: repo, tx: tx, catalog: catalog}, nil
}

// GetOrCreateCart loads the user's cart, lazily creating an empty one on
// first access.
func (s *service) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	cart, err := s.repo.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	fresh := &models.Cart{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: decimal.Zero,
		TotalItems:  0,
	}
	if err := s.repo.Create(ctx, fresh); err != nil {
		// Lost a create race with a concurrent first access; the row exists now.
		if existing, loadErr := s.repo.FindByUser(ctx, userID); loadErr == nil {
			return existing, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart")
	}
	fresh.Items = []models.CartItem{}
	return fresh, nil
}

// AddToCart snapshots the product's current name and price into a new line,
// or increments the existing line using its stored unit price.
func (s *service) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	laptop, err := s.catalog.FindLaptopByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindItemByProduct(ctx, cart.ID, productID)
		switch {
		case err == nil:
			newQty := existing.Quantity + quantity
			lineTotal := existing.UnitPrice.Mul(decimal.NewFromInt(int64(newQty)))
			if err := repo.UpdateItemQuantity(ctx, existing.ID, newQty, lineTotal); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item := &models.CartItem{
				ID:          uuid.New(),
				CartID:      cart.ID,
				ProductID:   laptop.ID,
				ProductName: laptop.Name,
				UnitPrice:   laptop.Price,
				Quantity:    quantity,
				TotalPrice:  laptop.Price.Mul(decimal.NewFromInt(int64(quantity))),
			}
			if err := repo.CreateItem(ctx, item); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart item")
			}
		default:
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
		}

		return recomputeTotals(ctx, repo, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

// UpdateCartItem overwrites a line's quantity. A quantity of zero or less
// deletes the line instead of failing.
func (s *service) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.Cart, error) {
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}

	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		item, err := repo.FindItem(ctx, cart.ID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
		}

		if quantity <= 0 {
			if err := repo.DeleteItem(ctx, item.ID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
			}
		} else {
			// Line total comes from the stored snapshot price, not the catalog.
			lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
			if err := repo.UpdateItemQuantity(ctx, item.ID, quantity, lineTotal); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item")
			}
		}

		return recomputeTotals(ctx, repo, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

// RemoveFromCart deletes a line item owned by the user's cart.
func (s *service) RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) (*models.Cart, error) {
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}

	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		item, err := repo.FindItem(ctx, cart.ID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
		}

		if err := repo.DeleteItem(ctx, item.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
		}

		return recomputeTotals(ctx, repo, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

// ClearCart drops every line item unconditionally; clearing an already empty
// cart is a no-op that leaves the totals at zero.
func (s *service) ClearCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DeleteItemsByCart(ctx, cart.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}
		return recomputeTotals(ctx, repo, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

func (s *service) reload(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload cart")
	}
	return cart, nil
}

// recomputeTotals folds over the persisted item set and overwrites the cart's
// derived columns. Incremental arithmetic on the in-memory aggregate is never
// trusted.
func recomputeTotals(ctx context.Context, repo *Repository, cartID uuid.UUID) error {
	items, err := repo.ListItems(ctx, cartID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload cart items")
	}

	totalAmount := decimal.Zero
	totalItems := 0
	for _, item := range items {
		totalAmount = totalAmount.Add(item.TotalPrice)
		totalItems += item.Quantity
	}

	if err := repo.UpdateTotals(ctx, cartID, totalAmount, totalItems); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart totals")
	}
	return nil
}
