package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/jordanhale/lapstore-backend/pkg/db"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

type productLoader interface {
	FindLaptopByID(ctx context.Context, id uuid.UUID) (*models.Laptop, error)
}

// Service exposes the per-user wishlist. Entries snapshot the listing at the
// moment they are added and never refresh afterwards.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	Add(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type service struct {
	repo    *Repository
	catalog productLoader
}

// NewService builds a wishlist service backed by the provided stack.
func NewService(repo *Repository, catalog productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("wishlist repository required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	return &service{repo: repo, catalog: catalog}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	return items, nil
}

// Add saves the product with a snapshot of its current name, price and lead
// image. Saving a product twice is a conflict, checked before the insert so
// the duplicate never reaches the unique index in the common path.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	laptop, err := s.catalog.FindLaptopByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	exists, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check wishlist entry")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already in wishlist")
	}

	item := &models.WishlistItem{
		ID:           uuid.New(),
		UserID:       userID,
		ProductID:    laptop.ID,
		ProductName:  laptop.Name,
		ProductPrice: laptop.Price,
	}
	if image := laptop.FirstImage(); image != "" {
		item.ProductImage = &image
	}

	if err := s.repo.Create(ctx, item); err != nil {
		// A concurrent add can still land on the unique index.
		if pkgdb.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "product already in wishlist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create wishlist entry")
	}
	return item, nil
}

func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	affected, err := s.repo.DeleteByProduct(ctx, userID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist entry")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist entry not found")
	}
	return nil
}

// Clear drops every entry; clearing an empty wishlist succeeds.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.DeleteByUser(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear wishlist")
	}
	return nil
}

func (s *service) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	exists, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check wishlist entry")
	}
	return exists, nil
}
