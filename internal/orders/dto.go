package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcusvales/shoplane-backend/internal/catalog"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
)

// ItemDTO is the wire representation of one order line. Price is the unit
// price captured at placement, not the product's current price.
type ItemDTO struct {
	ID       uuid.UUID          `json:"id"`
	Product  catalog.ProductDTO `json:"product"`
	Quantity int                `json:"quantity"`
	Price    string             `json:"price"`
	Subtotal string             `json:"subtotal"`
}

// OrderDTO is the wire representation of an order.
type OrderDTO struct {
	ID        uuid.UUID  `json:"id"`
	IsPaid    bool       `json:"is_paid"`
	PaidAt    *time.Time `json:"paid_at"`
	Items     []ItemDTO  `json:"items"`
	Total     string     `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

func toOrderDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:        order.ID,
		IsPaid:    order.IsPaid,
		PaidAt:    order.PaidAt,
		Items:     make([]ItemDTO, 0, len(order.Items)),
		CreatedAt: order.CreatedAt,
	}
	total := decimal.Zero
	for i := range order.Items {
		item := &order.Items[i]
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		dto.Items = append(dto.Items, ItemDTO{
			ID:       item.ID,
			Product:  *catalog.ProductDTOFromModel(item.Product),
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
			Subtotal: subtotal.StringFixed(2),
		})
	}
	dto.Total = total.StringFixed(2)
	return dto
}

func toOrderDTOs(orders []models.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, *toOrderDTO(&orders[i]))
	}
	return dtos
}
