package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/pkg/db/models"
)

const topProductsLimit = 5

// Repository runs the aggregate queries behind the sales summary.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an analytics repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TotalRevenue sums the captured unit price across every order line.
func (r *Repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Total decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("SUM(price) AS total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}
	return row.Total.Decimal, nil
}

// CountOrders returns total and paid order counts.
func (r *Repository) CountOrders(ctx context.Context) (total, paid int64, err error) {
	if err = r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("is_paid = ?", true).
		Count(&paid).Error
	if err != nil {
		return 0, 0, err
	}
	return total, paid, nil
}

type topProductRow struct {
	ProductID    uuid.UUID
	Title        string
	OrderedCount int64
}

// TopProducts ranks products by how many order lines reference them,
// descending, ties broken by product id for a stable order.
func (r *Repository) TopProducts(ctx context.Context) ([]topProductRow, error) {
	var rows []topProductRow
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("order_items.product_id AS product_id, products.title AS title, COUNT(order_items.id) AS ordered_count").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.title").
		Order("ordered_count DESC, product_id ASC").
		Limit(topProductsLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
