package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/pkg/db"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
)

// Service exposes the per-user wishlist operations.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error)
	Replace(ctx context.Context, userID uuid.UUID, req ReplaceRequest) (*WishlistDTO, error)
}

// ServiceParams bundles the dependencies required to build a wishlist service.
type ServiceParams struct {
	DB *db.Client
}

type service struct {
	db *db.Client
}

// NewService constructs a wishlist service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: params.DB}, nil
}

// Get returns the user's wishlist, creating it on first access.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error) {
	repo := NewRepository(s.db.DB())
	wishlist, err := repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist")
	}
	return toWishlistDTO(wishlist), nil
}

// Replace swaps the wishlist contents for the provided product set. Duplicate
// IDs in the request collapse to a single entry.
func (s *service) Replace(ctx context.Context, userID uuid.UUID, req ReplaceRequest) (*WishlistDTO, error) {
	productIDs, err := parseProductIDs(req.ProductIDs)
	if err != nil {
		return nil, err
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if len(productIDs) > 0 {
			count, err := repo.CountProducts(ctx, productIDs)
			if err != nil {
				return err
			}
			if count != int64(len(productIDs)) {
				return pkgerrors.New(pkgerrors.CodeValidation, "one or more products do not exist")
			}
		}

		wishlist, err := repo.GetOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}
		return repo.ReplaceItems(ctx, wishlist.ID, productIDs)
	})
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil {
			return nil, appErr
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "replace wishlist")
	}

	return s.Get(ctx, userID)
}

func parseProductIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id").
				WithDetails(map[string]string{"product_ids": value})
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
