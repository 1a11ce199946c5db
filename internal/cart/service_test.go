package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/internal/catalog"
	"github.com/marcusvales/shoplane-backend/pkg/db"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Keep a single connection so the private in-memory DB survives pooling.
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{`
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL,
  image_url TEXT,
  category_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS carts (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  cart_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (cart_id, product_id)
);`}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newCartTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := setupCartTestDB(t)
	client := db.NewWithConn(conn)

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo: catalog.NewRepository(conn),
	})
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{DB: client, Catalog: catalogService})
	require.NoError(t, err)
	return svc, conn
}

func seedCartProduct(t *testing.T, conn *gorm.DB, title, price string) models.Product {
	t.Helper()
	category := models.Category{ID: uuid.New(), Name: "General", Slug: "general-" + uuid.NewString()}
	require.NoError(t, conn.Create(&category).Error)

	product := models.Product{
		ID:         uuid.New(),
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	require.NoError(t, conn.Create(&product).Error)
	return product
}

func TestGetCreatesEmptyCartOnFirstAccess(t *testing.T) {
	svc, _ := newCartTestService(t)
	userID := uuid.New()

	cart, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0.00", cart.Total)

	again, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestAddItemCreatesLine(t *testing.T) {
	svc, conn := newCartTestService(t)
	userID := uuid.New()
	product := seedCartProduct(t, conn, "Speaker", "49.90")

	cart, err := svc.AddItem(context.Background(), userID, AddItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].Product.ID)
	assert.Equal(t, "Speaker", cart.Items[0].Product.Title)
	assert.Equal(t, "49.90", cart.Items[0].Product.Price)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "99.80", cart.Items[0].Subtotal)
	assert.Equal(t, "99.80", cart.Total)
}

func TestAddItemMergesQuantitiesForSameProduct(t *testing.T) {
	svc, conn := newCartTestService(t)
	userID := uuid.New()
	product := seedCartProduct(t, conn, "Speaker", "10.00")

	_, err := svc.AddItem(context.Background(), userID, AddItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	cart, err := svc.AddItem(context.Background(), userID, AddItemRequest{
		ProductID: product.ID.String(),
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "50.00", cart.Total)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	svc, conn := newCartTestService(t)
	userID := uuid.New()
	product := seedCartProduct(t, conn, "Speaker", "10.00")

	cart, err := svc.AddItem(context.Background(), userID, AddItemRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemUnknownProductFailsValidation(t *testing.T) {
	svc, _ := newCartTestService(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), AddItemRequest{
		ProductID: uuid.NewString(),
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestRemoveItemDeletesOwnLine(t *testing.T) {
	svc, conn := newCartTestService(t)
	userID := uuid.New()
	product := seedCartProduct(t, conn, "Speaker", "10.00")

	cart, err := svc.AddItem(context.Background(), userID, AddItemRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	require.NoError(t, svc.RemoveItem(context.Background(), userID, cart.Items[0].ID))

	cart, err = svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveItemForeignLineReturnsNotFound(t *testing.T) {
	svc, conn := newCartTestService(t)
	owner := uuid.New()
	intruder := uuid.New()
	product := seedCartProduct(t, conn, "Speaker", "10.00")

	cart, err := svc.AddItem(context.Background(), owner, AddItemRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	err = svc.RemoveItem(context.Background(), intruder, cart.Items[0].ID)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	// Owner still has the line.
	cart, err = svc.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}
