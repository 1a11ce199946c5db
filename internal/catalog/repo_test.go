package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	"github.com/marcusvales/shoplane-backend/pkg/pagination"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Keep a single connection so the private in-memory DB survives pooling.
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`
	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL,
  image_url TEXT,
  category_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	for _, ddl := range []string{categories, products} {
		require.NoError(t, conn.Exec(ddl).Error)
	}
	return conn
}

func seedCategory(t *testing.T, conn *gorm.DB, name, slug string) models.Category {
	t.Helper()
	category := models.Category{ID: uuid.New(), Name: name, Slug: slug}
	require.NoError(t, conn.Create(&category).Error)
	return category
}

func seedProduct(t *testing.T, conn *gorm.DB, title, price string, categoryID uuid.UUID) models.Product {
	t.Helper()
	product := models.Product{
		ID:         uuid.New(),
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	}
	require.NoError(t, conn.Create(&product).Error)
	return product
}

func TestListProductsFiltersBySearch(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	category := seedCategory(t, conn, "Audio", "audio")
	seedProduct(t, conn, "Wireless Headphones", "59.90", category.ID)
	seedProduct(t, conn, "Desk Lamp", "19.90", category.ID)

	results, count, err := repo.ListProducts(ctx, ProductFilter{Search: "headph"}, pagination.Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, results, 1)
	assert.Equal(t, "Wireless Headphones", results[0].Title)
}

func TestListProductsSearchIgnoresCase(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	category := seedCategory(t, conn, "Audio", "audio")
	seedProduct(t, conn, "Wireless Headphones", "59.90", category.ID)

	results, count, err := repo.ListProducts(ctx, ProductFilter{Search: "HEADPH"}, pagination.Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, results, 1)
	assert.Equal(t, "Wireless Headphones", results[0].Title)
}

func TestListProductsFiltersByCategorySlug(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	audio := seedCategory(t, conn, "Audio", "audio")
	home := seedCategory(t, conn, "Home", "home")
	seedProduct(t, conn, "Speaker", "39.00", audio.ID)
	seedProduct(t, conn, "Desk Lamp", "19.90", home.ID)

	results, count, err := repo.ListProducts(ctx, ProductFilter{CategorySlug: "home"}, pagination.Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, results, 1)
	assert.Equal(t, "Desk Lamp", results[0].Title)
	require.NotNil(t, results[0].Category)
	assert.Equal(t, "home", results[0].Category.Slug)
}

func TestListProductsOrderingByTitle(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	category := seedCategory(t, conn, "Audio", "audio")
	seedProduct(t, conn, "Bravo", "20.00", category.ID)
	seedProduct(t, conn, "Alpha", "10.00", category.ID)
	seedProduct(t, conn, "Charlie", "30.00", category.ID)

	results, _, err := repo.ListProducts(ctx, ProductFilter{Ordering: "title"}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Alpha", results[0].Title)
	assert.Equal(t, "Bravo", results[1].Title)
	assert.Equal(t, "Charlie", results[2].Title)

	results, _, err = repo.ListProducts(ctx, ProductFilter{Ordering: "-title"}, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, "Charlie", results[0].Title)
}

func TestListProductsPaginates(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	category := seedCategory(t, conn, "Audio", "audio")
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		seedProduct(t, conn, title, "10.00", category.ID)
	}

	params := pagination.Params{Page: 2, PageSize: 2}
	results, count, err := repo.ListProducts(ctx, ProductFilter{Ordering: "title"}, params)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
	require.Len(t, results, 2)
	assert.Equal(t, "C", results[0].Title)
	assert.Equal(t, "D", results[1].Title)
}

func TestUpdateProductMissingRowReturnsNotFound(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)

	err := repo.UpdateProduct(context.Background(), uuid.New(), map[string]any{"title": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProductMissingRowReturnsNotFound(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)

	err := repo.DeleteProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
