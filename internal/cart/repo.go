package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcusvales/shoplane-backend/pkg/db/models"
)

// Repository encapsulates cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreateByUser loads the user's cart, creating an empty one on first use.
// Items are returned with their product preloaded, oldest line first.
func (r *Repository) GetOrCreateByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return &cart, nil
}

// UpsertItem inserts a cart line, or folds its quantity onto the existing
// line for the same (cart, product). The conflict is resolved by the database
// so concurrent adds never leave the transaction in a failed state.
func (r *Repository) UpsertItem(ctx context.Context, item *models.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("quantity + ?", item.Quantity),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(item).Error
}

// DeleteItemForUser removes a cart line only when it belongs to the user's
// cart. Returns gorm.ErrRecordNotFound when no such line exists.
func (r *Repository) DeleteItemForUser(ctx context.Context, userID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where(
			"id = ? AND cart_id IN (?)",
			itemID,
			r.db.Model(&models.Cart{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearByUser deletes every line from the user's cart.
func (r *Repository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where(
			"cart_id IN (?)",
			r.db.Model(&models.Cart{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&models.CartItem{}).Error
}
