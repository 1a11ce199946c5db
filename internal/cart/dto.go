package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcusvales/shoplane-backend/internal/catalog"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
)

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// ItemDTO is the wire representation of a single cart line.
type ItemDTO struct {
	ID       uuid.UUID          `json:"id"`
	Product  catalog.ProductDTO `json:"product"`
	Quantity int                `json:"quantity"`
	Subtotal string             `json:"subtotal"`
}

// CartDTO is the wire representation of the user's cart.
type CartDTO struct {
	ID    uuid.UUID `json:"id"`
	Items []ItemDTO `json:"items"`
	Total string    `json:"total"`
}

func toCartDTO(cart *models.Cart) *CartDTO {
	dto := &CartDTO{
		ID:    cart.ID,
		Items: make([]ItemDTO, 0, len(cart.Items)),
	}
	total := decimal.Zero
	for i := range cart.Items {
		item := &cart.Items[i]
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		dto.Items = append(dto.Items, ItemDTO{
			ID:       item.ID,
			Product:  *catalog.ProductDTOFromModel(item.Product),
			Quantity: item.Quantity,
			Subtotal: subtotal.StringFixed(2),
		})
	}
	dto.Total = total.StringFixed(2)
	return dto
}
