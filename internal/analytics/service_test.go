package analytics

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
)

func setupAnalyticsTestDB(t *testing.T) *gorm.DB {
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
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  is_paid INTEGER NOT NULL DEFAULT 0,
  paid_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price NUMERIC NOT NULL,
  created_at DATETIME
);`}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newAnalyticsTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := setupAnalyticsTestDB(t)
	svc, err := NewService(ServiceParams{DB: conn})
	require.NoError(t, err)
	return svc, conn
}

func seedAnalyticsProduct(t *testing.T, conn *gorm.DB, title string) models.Product {
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

func seedOrder(t *testing.T, conn *gorm.DB, paid bool, lines map[uuid.UUID]string) {
	t.Helper()
	order := models.Order{ID: uuid.New(), UserID: uuid.New(), IsPaid: paid}
	require.NoError(t, conn.Create(&order).Error)

	for productID, price := range lines {
		item := models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: productID,
			Quantity:  1,
			Price:     decimal.RequireFromString(price),
		}
		require.NoError(t, conn.Create(&item).Error)
	}
}

func TestSummaryEmptySystemReturnsZeros(t *testing.T) {
	svc, _ := newAnalyticsTestService(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00", summary.TotalRevenue)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.PaidOrders)
	assert.Empty(t, summary.TopProducts)
}

func TestSummaryAggregatesRevenueAndCounts(t *testing.T) {
	svc, conn := newAnalyticsTestService(t)
	product := seedAnalyticsProduct(t, conn, "Speaker")

	seedOrder(t, conn, true, map[uuid.UUID]string{product.ID: "10.00"})
	seedOrder(t, conn, false, map[uuid.UUID]string{product.ID: "20.50"})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "30.50", summary.TotalRevenue)
	assert.EqualValues(t, 2, summary.TotalOrders)
	assert.EqualValues(t, 1, summary.PaidOrders)
}

func TestSummaryRanksTopProductsByLineCount(t *testing.T) {
	svc, conn := newAnalyticsTestService(t)

	popular := seedAnalyticsProduct(t, conn, "Popular")
	niche := seedAnalyticsProduct(t, conn, "Niche")

	// Three lines for popular, one for niche. Quantity does not matter,
	// only how many order lines reference the product.
	seedOrder(t, conn, true, map[uuid.UUID]string{popular.ID: "10.00", niche.ID: "10.00"})
	seedOrder(t, conn, true, map[uuid.UUID]string{popular.ID: "10.00"})
	seedOrder(t, conn, false, map[uuid.UUID]string{popular.ID: "10.00"})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, popular.ID, summary.TopProducts[0].ProductID)
	assert.Equal(t, "Popular", summary.TopProducts[0].Title)
	assert.EqualValues(t, 3, summary.TopProducts[0].OrderedCount)
	assert.Equal(t, niche.ID, summary.TopProducts[1].ProductID)
	assert.EqualValues(t, 1, summary.TopProducts[1].OrderedCount)
}

func TestSummaryLimitsTopProductsToFive(t *testing.T) {
	svc, conn := newAnalyticsTestService(t)

	for i := 0; i < 7; i++ {
		product := seedAnalyticsProduct(t, conn, "Item")
		seedOrder(t, conn, true, map[uuid.UUID]string{product.ID: "10.00"})
	}

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.TopProducts, 5)
}
