package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	"github.com/marcusvales/shoplane-backend/pkg/pagination"
)

// Allowed ordering keys for product listings. Anything else falls back to
// newest-first.
var productOrderings = map[string]string{
	"price":       "price ASC, id ASC",
	"-price":      "price DESC, id ASC",
	"title":       "title ASC, id ASC",
	"-title":      "title DESC, id ASC",
	"created_at":  "created_at ASC, id ASC",
	"-created_at": "created_at DESC, id ASC",
}

const defaultProductOrdering = "created_at DESC, id ASC"

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Search       string
	CategorySlug string
	Ordering     string
}

// Repository encapsulates catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCategories returns every category ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// FindCategoryBySlug loads a category by its slug.
func (r *Repository) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindCategoryByID loads a category by primary key.
func (r *Repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory writes the provided column values for a category.
func (r *Repository) UpdateCategory(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCategory removes a category by ID.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateCategory persists a new category.
func (r *Repository) CreateCategory(ctx context.Context, name, slug string) (*models.Category, error) {
	category := models.Category{
		ID:   uuid.New(),
		Name: name,
		Slug: slug,
	}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListProducts returns one page of products matching the filter, with the
// total match count.
func (r *Repository) ListProducts(ctx context.Context, filter ProductFilter, params pagination.Params) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		// LOWER on both sides keeps the match case-insensitive on postgres.
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if slug := strings.TrimSpace(filter.CategorySlug); slug != "" {
		query = query.Where(
			"category_id IN (?)",
			r.db.Model(&models.Category{}).Select("id").Where("slug = ?", slug),
		)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	ordering, ok := productOrderings[strings.TrimSpace(filter.Ordering)]
	if !ok {
		ordering = defaultProductOrdering
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Order(ordering).
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, count, nil
}

// FindProductByID loads a product with its category.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct persists a new product.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct writes the provided column values for a product.
func (r *Repository) UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteProduct removes a product by ID.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
