package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/pkg/db"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
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
CREATE TABLE IF NOT EXISTS wishlists (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id TEXT PRIMARY KEY,
  wishlist_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  created_at DATETIME,
  UNIQUE (wishlist_id, product_id)
);`}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newWishlistTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := setupWishlistTestDB(t)
	svc, err := NewService(ServiceParams{DB: db.NewWithConn(conn)})
	require.NoError(t, err)
	return svc, conn
}

func seedWishlistProduct(t *testing.T, conn *gorm.DB, title string) models.Product {
	t.Helper()
	category := models.Category{ID: uuid.New(), Name: "General", Slug: "general-" + uuid.NewString()}
	require.NoError(t, conn.Create(&category).Error)

	product := models.Product{
		ID:         uuid.New(),
		Title:      title,
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: category.ID,
	}
	require.NoError(t, conn.Create(&product).Error)
	return product
}

func TestGetCreatesEmptyWishlistOnFirstAccess(t *testing.T) {
	svc, _ := newWishlistTestService(t)
	userID := uuid.New()

	wishlist, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Products)

	again, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, wishlist.ID, again.ID)
}

func TestReplaceSetsProducts(t *testing.T) {
	svc, conn := newWishlistTestService(t)
	userID := uuid.New()
	first := seedWishlistProduct(t, conn, "Speaker")
	second := seedWishlistProduct(t, conn, "Lamp")

	wishlist, err := svc.Replace(context.Background(), userID, ReplaceRequest{
		ProductIDs: []string{first.ID.String(), second.ID.String()},
	})
	require.NoError(t, err)
	assert.Len(t, wishlist.Products, 2)

	// Replacing again with a smaller set drops the rest.
	wishlist, err = svc.Replace(context.Background(), userID, ReplaceRequest{
		ProductIDs: []string{second.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, wishlist.Products, 1)
	assert.Equal(t, second.ID, wishlist.Products[0].ID)
}

func TestReplaceCollapsesDuplicates(t *testing.T) {
	svc, conn := newWishlistTestService(t)
	userID := uuid.New()
	product := seedWishlistProduct(t, conn, "Speaker")

	wishlist, err := svc.Replace(context.Background(), userID, ReplaceRequest{
		ProductIDs: []string{product.ID.String(), product.ID.String()},
	})
	require.NoError(t, err)
	assert.Len(t, wishlist.Products, 1)
}

func TestReplaceWithEmptySetClears(t *testing.T) {
	svc, conn := newWishlistTestService(t)
	userID := uuid.New()
	product := seedWishlistProduct(t, conn, "Speaker")

	_, err := svc.Replace(context.Background(), userID, ReplaceRequest{
		ProductIDs: []string{product.ID.String()},
	})
	require.NoError(t, err)

	wishlist, err := svc.Replace(context.Background(), userID, ReplaceRequest{ProductIDs: []string{}})
	require.NoError(t, err)
	assert.Empty(t, wishlist.Products)
}

func TestReplaceUnknownProductFailsValidation(t *testing.T) {
	svc, conn := newWishlistTestService(t)
	userID := uuid.New()
	product := seedWishlistProduct(t, conn, "Speaker")

	_, err := svc.Replace(context.Background(), userID, ReplaceRequest{
		ProductIDs: []string{product.ID.String(), uuid.NewString()},
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	// Nothing was written.
	wishlist, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Products)
}
