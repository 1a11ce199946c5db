package analytics

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
)

// Service produces the admin sales summary.
type Service interface {
	Summary(ctx context.Context) (*SummaryDTO, error)
}

// ServiceParams bundles the dependencies required to build an analytics service.
type ServiceParams struct {
	DB *gorm.DB
}

type service struct {
	repo *Repository
}

// NewService constructs an analytics service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	return &service{repo: NewRepository(params.DB)}, nil
}

// Summary aggregates revenue, order counts, and the best-seller ranking.
// With no orders in the system it returns zeros and an empty ranking.
func (s *service) Summary(ctx context.Context) (*SummaryDTO, error) {
	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sum revenue")
	}

	total, paid, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count orders")
	}

	rows, err := s.repo.TopProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rank products")
	}

	top := make([]TopProductDTO, 0, len(rows))
	for _, row := range rows {
		top = append(top, TopProductDTO{
			ProductID:    row.ProductID,
			Title:        row.Title,
			OrderedCount: row.OrderedCount,
		})
	}

	return &SummaryDTO{
		TotalRevenue: revenue.StringFixed(2),
		TotalOrders:  total,
		PaidOrders:   paid,
		TopProducts:  top,
	}, nil
}
