package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusvales/shoplane-backend/internal/cart"
	"github.com/marcusvales/shoplane-backend/pkg/db"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
	"github.com/marcusvales/shoplane-backend/pkg/logger"
	"github.com/marcusvales/shoplane-backend/pkg/pagination"
)

// Service exposes order placement, payment, and history.
type Service interface {
	Place(ctx context.Context, userID uuid.UUID) (*OrderDTO, error)
	Pay(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*pagination.Page[OrderDTO], error)
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	DB *db.Client
}

type service struct {
	db *db.Client
}

// NewService constructs an orders service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: params.DB}, nil
}

// Place converts the user's cart into an order. Each line captures the
// product's price at this moment; later price changes do not touch placed
// orders. The cart is emptied in the same transaction, so a failure leaves
// both cart and order untouched.
func (s *service) Place(ctx context.Context, userID uuid.UUID) (*OrderDTO, error) {
	var orderID uuid.UUID

	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := cart.NewRepository(tx)
		userCart, err := cartRepo.GetOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(userCart.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		order := models.Order{
			ID:     uuid.New(),
			UserID: userID,
			Items:  make([]models.OrderItem, 0, len(userCart.Items)),
		}
		for i := range userCart.Items {
			line := &userCart.Items[i]
			order.Items = append(order.Items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			})
		}

		if err := NewRepository(tx).Create(ctx, &order); err != nil {
			return err
		}
		if err := cartRepo.ClearByUser(ctx, userID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil {
			return nil, appErr
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "place order")
	}

	logger.FromContext(ctx).Info().
		Str("order_id", orderID.String()).
		Msg("order placed")

	return s.Get(ctx, userID, orderID)
}

// Pay marks an order as paid. Paying an already paid order is a no-op that
// returns the order unchanged.
func (s *service) Pay(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	repo := NewRepository(s.db.DB())

	order, err := repo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}

	if !order.IsPaid {
		touched, err := repo.MarkPaid(ctx, order.ID, time.Now().UTC())
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark order paid")
		}
		if touched > 0 {
			logger.FromContext(ctx).Info().
				Str("order_id", order.ID.String()).
				Msg("order paid")
		}
	}

	return s.Get(ctx, userID, orderID)
}

// Get loads one of the user's orders.
func (s *service) Get(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := NewRepository(s.db.DB()).FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return toOrderDTO(order), nil
}

// List returns one page of the user's order history, newest first.
func (s *service) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*pagination.Page[OrderDTO], error) {
	params = params.Normalize()
	orders, count, err := NewRepository(s.db.DB()).ListByUser(ctx, userID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	page := pagination.NewPage(toOrderDTOs(orders), count, params)
	return &page, nil
}
