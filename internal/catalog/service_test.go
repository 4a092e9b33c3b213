package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
	"github.com/jordanhale/lapstore-backend/pkg/types"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	laptops := `
CREATE TABLE IF NOT EXISTS laptops (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT,
  price NUMERIC NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0,
  specs TEXT,
  images TEXT,
  category_id TEXT,
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	banners := `
CREATE TABLE IF NOT EXISTS banners (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  image_url TEXT NOT NULL,
  link_url TEXT,
  position INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(laptops).Error)
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(banners).Error)
	return db
}

func newCatalogService(t *testing.T) Service {
	t.Helper()

	svc, err := NewService(NewRepository(setupCatalogTestDB(t)))
	require.NoError(t, err)
	return svc
}

func laptopInput(slug string) CreateLaptopInput {
	return CreateLaptopInput{
		Name:  "ThinkPad X1 Carbon",
		Slug:  slug,
		Price: decimal.NewFromInt(1450),
		Stock: 4,
		Specs: types.LaptopSpecs{Processor: "Intel Core i7", RAM: "16GB"},
	}
}

func TestCreateLaptop_roundTrip(t *testing.T) {
	svc := newCatalogService(t)

	created, err := svc.CreateLaptop(context.Background(), laptopInput("thinkpad-x1"))
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	found, err := svc.GetLaptop(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ThinkPad X1 Carbon", found.Name)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(1450)))
	assert.Equal(t, "Intel Core i7", found.Specs.Processor)
}

func TestCreateLaptop_rejectsNegativePrice(t *testing.T) {
	svc := newCatalogService(t)

	input := laptopInput("thinkpad-x1")
	input.Price = decimal.NewFromInt(-1)
	_, err := svc.CreateLaptop(context.Background(), input)

	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestCreateLaptop_duplicateSlugIsConflict(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.CreateLaptop(context.Background(), laptopInput("thinkpad-x1"))
	require.NoError(t, err)

	_, err = svc.CreateLaptop(context.Background(), laptopInput("thinkpad-x1"))
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestUpdateLaptop_partialUpdate(t *testing.T) {
	svc := newCatalogService(t)

	created, err := svc.CreateLaptop(context.Background(), laptopInput("thinkpad-x1"))
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(1200)
	inactive := false
	updated, err := svc.UpdateLaptop(context.Background(), created.ID, UpdateLaptopInput{
		Price:    &newPrice,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.Name, updated.Name)
}

func TestUpdateLaptop_unknownID(t *testing.T) {
	svc := newCatalogService(t)

	name := "Renamed"
	_, err := svc.UpdateLaptop(context.Background(), uuid.New(), UpdateLaptopInput{Name: &name})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestListLaptops_filters(t *testing.T) {
	svc := newCatalogService(t)

	featured := laptopInput("featured-model")
	featured.IsFeatured = true
	_, err := svc.CreateLaptop(context.Background(), featured)
	require.NoError(t, err)
	plain, err := svc.CreateLaptop(context.Background(), laptopInput("plain-model"))
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateLaptop(context.Background(), plain.ID, UpdateLaptopInput{IsActive: &inactive})
	require.NoError(t, err)

	onlyFeatured, err := svc.ListLaptops(context.Background(), ListFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, onlyFeatured, 1)
	assert.Equal(t, "featured-model", onlyFeatured[0].Slug)

	onlyActive, err := svc.ListLaptops(context.Background(), ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, "featured-model", onlyActive[0].Slug)
}

func TestDeleteLaptop_unknownID(t *testing.T) {
	svc := newCatalogService(t)

	err := svc.DeleteLaptop(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestBanners_listReturnsActiveInPositionOrder(t *testing.T) {
	svc := newCatalogService(t)

	second, err := svc.CreateBanner(context.Background(), CreateBannerInput{
		Title:    "Back to school",
		ImageURL: "https://img.test/bts.jpg",
		Position: 2,
	})
	require.NoError(t, err)
	_, err = svc.CreateBanner(context.Background(), CreateBannerInput{
		Title:    "Summer sale",
		ImageURL: "https://img.test/summer.jpg",
		Position: 1,
	})
	require.NoError(t, err)

	banners, err := svc.ListBanners(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, "Summer sale", banners[0].Title)
	assert.Equal(t, second.ID, banners[1].ID)
}

func TestCategories_roundTripAndDelete(t *testing.T) {
	svc := newCatalogService(t)

	created, err := svc.CreateCategory(context.Background(), CreateCategoryInput{
		Name: "Ultrabooks",
		Slug: "ultrabooks",
	})
	require.NoError(t, err)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)

	require.NoError(t, svc.DeleteCategory(context.Background(), created.ID))
	err = svc.DeleteCategory(context.Background(), created.ID)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
