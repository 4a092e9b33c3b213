package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	"github.com/jordanhale/lapstore-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'customer',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  order_number TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  shipping_name TEXT NOT NULL,
  shipping_phone TEXT,
  shipping_address TEXT NOT NULL,
  shipping_city TEXT NOT NULL,
  shipping_zip TEXT,
  subtotal NUMERIC NOT NULL DEFAULT 0,
  tax NUMERIC NOT NULL DEFAULT 0,
  shipping_cost NUMERIC NOT NULL DEFAULT 0,
  total_amount NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  unit_price NUMERIC NOT NULL,
  quantity INTEGER NOT NULL,
  total_price NUMERIC NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(orderItems).Error)
	return db
}

func newOrder(t *testing.T, db *gorm.DB, userID uuid.UUID, status enums.OrderStatus, total int64, created time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		OrderNumber:     newOrderNumber(),
		Status:          status,
		ShippingName:    "Test Buyer",
		ShippingAddress: "12 Main St",
		ShippingCity:    "Norman",
		Subtotal:        decimal.NewFromInt(total),
		TotalAmount:     decimal.NewFromInt(total),
		CreatedAt:       created,
		UpdatedAt:       created,
		Items: []models.OrderItem{
			{
				ID:          uuid.New(),
				ProductID:   uuid.New(),
				ProductName: "Test Laptop",
				UnitPrice:   decimal.NewFromInt(total),
				Quantity:    1,
				TotalPrice:  decimal.NewFromInt(total),
			},
		},
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryList_scopesToUser(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	alice := uuid.New()
	bob := uuid.New()
	now := time.Now().UTC()
	newOrder(t, db, alice, enums.OrderStatusPending, 100, now.Add(-time.Hour))
	second := newOrder(t, db, alice, enums.OrderStatusConfirmed, 200, now)
	newOrder(t, db, bob, enums.OrderStatusPending, 300, now)

	list, err := repo.List(context.Background(), &alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	require.Len(t, list[0].Items, 1)

	all, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepositoryFindByID_joinsItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := newOrder(t, db, uuid.New(), enums.OrderStatusPending, 450, time.Now().UTC())

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, found.OrderNumber)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Test Laptop", found.Items[0].ProductName)
}

func TestRepositoryUpdateStatus_reportsMissingRows(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := newOrder(t, db, uuid.New(), enums.OrderStatusCancelled, 100, time.Now().UTC())

	affected, err := repo.UpdateStatus(context.Background(), order.ID, enums.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.UpdateStatus(context.Background(), uuid.New(), enums.OrderStatusShipped)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestRepositoryDelete_removesItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := newOrder(t, db, uuid.New(), enums.OrderStatusPending, 100, time.Now().UTC())

	affected, err := repo.Delete(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestRepositoryStats_revenueCountsConfirmedShippedDelivered(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	user := uuid.New()
	now := time.Now().UTC()
	newOrder(t, db, user, enums.OrderStatusPending, 50, now)
	newOrder(t, db, user, enums.OrderStatusConfirmed, 100, now)
	newOrder(t, db, user, enums.OrderStatusShipped, 200, now)
	newOrder(t, db, user, enums.OrderStatusDelivered, 400, now)
	newOrder(t, db, user, enums.OrderStatusCancelled, 800, now)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.CompletedOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(700)),
		"expected revenue 700, got %s", stats.TotalRevenue)
}

func TestRepositoryStats_emptyTableYieldsZeroRevenue(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
}
