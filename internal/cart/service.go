package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/internal/catalog"
	"github.com/marcusvales/shoplane-backend/pkg/db"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
)

// Service exposes the per-user cart operations.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	DB      *db.Client
	Catalog catalog.Service
}

type service struct {
	db      *db.Client
	catalog catalog.Service
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog service is required")
	}
	return &service{
		db:      params.DB,
		catalog: params.Catalog,
	}, nil
}

// Get returns the user's cart, creating it on first access.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	repo := NewRepository(s.db.DB())
	cart, err := repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return toCartDTO(cart), nil
}

// AddItem puts a product in the cart. Adding a product already present merges
// into the existing line by summing quantities.
func (s *service) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.catalog.GetProduct(ctx, productID); err != nil {
		if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product does not exist")
		}
		return nil, err
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		cart, err := repo.GetOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}

		return repo.UpsertItem(ctx, &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart item")
	}

	return s.Get(ctx, userID)
}

// RemoveItem deletes a cart line the user owns. Lines in other users' carts
// are indistinguishable from missing ones.
func (s *service) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	repo := NewRepository(s.db.DB())
	if err := repo.DeleteItemForUser(ctx, userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	return nil
}
