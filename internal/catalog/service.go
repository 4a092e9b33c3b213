package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	pkgdb "github.com/jordanhale/lapstore-backend/pkg/db"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

// Service exposes business rules for catalog management and reads.
type Service interface {
	GetLaptop(ctx context.Context, id uuid.UUID) (*models.Laptop, error)
	ListLaptops(ctx context.Context, filter ListFilter) ([]models.Laptop, error)
	CreateLaptop(ctx context.Context, input CreateLaptopInput) (*models.Laptop, error)
	UpdateLaptop(ctx context.Context, id uuid.UUID, input UpdateLaptopInput) (*models.Laptop, error)
	DeleteLaptop(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, input CreateBannerInput) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// GetLaptop loads a single listing or reports NotFound.
func (s *service) GetLaptop(ctx context.Context, id uuid.UUID) (*models.Laptop, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "laptop id is required")
	}
	laptop, err := s.repo.FindLaptopByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "laptop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load laptop")
	}
	return laptop, nil
}

func (s *service) ListLaptops(ctx context.Context, filter ListFilter) ([]models.Laptop, error) {
	laptops, err := s.repo.ListLaptops(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list laptops")
	}
	return laptops, nil
}

func (s *service) CreateLaptop(ctx context.Context, input CreateLaptopInput) (*models.Laptop, error) {
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must be non-negative")
	}

	laptop := &models.Laptop{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Specs:       input.Specs,
		Images:      pq.StringArray(input.Images),
		CategoryID:  input.CategoryID,
		IsFeatured:  input.IsFeatured,
		IsActive:    true,
	}
	if err := s.repo.CreateLaptop(ctx, laptop); err != nil {
		if pkgdb.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "laptop slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create laptop")
	}
	return laptop, nil
}

func (s *service) UpdateLaptop(ctx context.Context, id uuid.UUID, input UpdateLaptopInput) (*models.Laptop, error) {
	if _, err := s.GetLaptop(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
		}
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must be non-negative")
		}
		updates["stock"] = *input.Stock
	}
	if input.Specs != nil {
		updates["specs"] = *input.Specs
	}
	if input.Images != nil {
		updates["images"] = pq.StringArray(*input.Images)
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.IsFeatured != nil {
		updates["is_featured"] = *input.IsFeatured
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateLaptop(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update laptop")
		}
	}
	return s.GetLaptop(ctx, id)
}

func (s *service) DeleteLaptop(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteLaptop(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete laptop")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "laptop not found")
	}
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return categories, nil
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if pkgdb.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return category, nil
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return nil
}

func (s *service) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.repo.ListBanners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list banners")
	}
	return banners, nil
}

func (s *service) CreateBanner(ctx context.Context, input CreateBannerInput) (*models.Banner, error) {
	banner := &models.Banner{
		ID:       uuid.New(),
		Title:    input.Title,
		ImageURL: input.ImageURL,
		LinkURL:  input.LinkURL,
		Position: input.Position,
		IsActive: true,
	}
	if err := s.repo.CreateBanner(ctx, banner); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create banner")
	}
	return banner, nil
}

func (s *service) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteBanner(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete banner")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
	}
	return nil
}
