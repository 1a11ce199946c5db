package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/pkg/db"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
	"github.com/marcusvales/shoplane-backend/pkg/logger"
	"github.com/marcusvales/shoplane-backend/pkg/pagination"
)

// Service exposes catalog reads and admin writes.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryDTO, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter ProductFilter, params pagination.Params) (*pagination.Page[ProductDTO], error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CatalogKey(parts ...string) string
}

// ServiceParams bundles the dependencies required to build a catalog service.
type ServiceParams struct {
	Repo     *Repository
	Cache    productCache
	CacheTTL time.Duration
}

type service struct {
	repo     *Repository
	cache    productCache
	cacheTTL time.Duration
}

// NewService constructs a catalog service. Cache is optional; when nil the
// service reads straight from the database.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &service{
		repo:     params.Repo,
		cache:    params.Cache,
		cacheTTL: ttl,
	}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, *toCategoryDTO(&categories[i]))
	}
	return dtos, nil
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	category, err := s.repo.CreateCategory(ctx, strings.TrimSpace(req.Name), slug)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return toCategoryDTO(category), nil
}

func (s *service) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}
	return toCategoryDTO(category), nil
}

func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryDTO, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		updates["slug"] = strings.ToLower(strings.TrimSpace(*req.Slug))
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.UpdateCategory(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update category")
	}

	return s.GetCategory(ctx, id)
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.New(pkgerrors.CodeConflict, "category still has products")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
	}
	return nil
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter, params pagination.Params) (*pagination.Page[ProductDTO], error) {
	params = params.Normalize()
	products, count, err := s.repo.ListProducts(ctx, filter, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	page := pagination.NewPage(toProductDTOs(products), count, params)
	return &page, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	if cached := s.cachedProduct(ctx, id); cached != nil {
		return cached, nil
	}

	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	dto := toProductDTO(product)
	s.cacheProduct(ctx, dto)
	return dto, nil
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid category id")
	}

	product := models.Product{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Price:       price,
		ImageURL:    req.ImageURL,
		CategoryID:  categoryID,
	}
	if err := s.repo.CreateProduct(ctx, &product); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}

	return s.GetProduct(ctx, product.ID)
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error) {
	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		updates["price"] = price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid category id")
		}
		updates["category_id"] = categoryID
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.UpdateProduct(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	s.invalidateProduct(ctx, id)
	return s.GetProduct(ctx, id)
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	s.invalidateProduct(ctx, id)
	return nil
}

func (s *service) cachedProduct(ctx context.Context, id uuid.UUID) *ProductDTO {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.CatalogKey("product", id.String()))
	if err != nil {
		return nil
	}
	var dto ProductDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return nil
	}
	return &dto
}

func (s *service) cacheProduct(ctx context.Context, dto *ProductDTO) {
	if s.cache == nil || dto == nil {
		return
	}
	payload, err := json.Marshal(dto)
	if err != nil {
		return
	}
	key := s.cache.CatalogKey("product", dto.ID.String())
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

func (s *service) invalidateProduct(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := s.cache.CatalogKey("product", id.String())
	if err := s.cache.Del(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("catalog cache invalidation failed")
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid price")
	}
	if price.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return price.Round(2), nil
}
