package wishlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/pkg/db/models"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a wishlist repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreateByUser loads the user's wishlist, creating an empty one on first
// use. Items are returned with their product preloaded, newest first.
func (r *Repository) GetOrCreateByUser(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("wishlist_items.created_at DESC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&wishlist).Error
	if err == nil {
		return &wishlist, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wishlist = models.Wishlist{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(&wishlist).Error; err != nil {
		return nil, err
	}
	wishlist.Items = []models.WishlistItem{}
	return &wishlist, nil
}

// CountProducts returns how many of the provided product IDs exist.
func (r *Repository) CountProducts(ctx context.Context, productIDs []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id IN ?", productIDs).
		Count(&count).Error
	return count, err
}

// ReplaceItems swaps the wishlist contents for the provided product set.
func (r *Repository) ReplaceItems(ctx context.Context, wishlistID uuid.UUID, productIDs []uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Delete(&models.WishlistItem{}).Error; err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}

	items := make([]models.WishlistItem, 0, len(productIDs))
	for _, productID := range productIDs {
		items = append(items, models.WishlistItem{
			ID:         uuid.New(),
			WishlistID: wishlistID,
			ProductID:  productID,
		})
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
