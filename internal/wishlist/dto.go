package wishlist

import (
	"github.com/google/uuid"

	"github.com/marcusvales/shoplane-backend/internal/catalog"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
)

// ReplaceRequest sets the full product set of the wishlist.
type ReplaceRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,dive,uuid"`
}

// WishlistDTO is the wire representation of the user's wishlist.
type WishlistDTO struct {
	ID       uuid.UUID            `json:"id"`
	Products []catalog.ProductDTO `json:"products"`
}

func toWishlistDTO(wishlist *models.Wishlist) *WishlistDTO {
	dto := &WishlistDTO{
		ID:       wishlist.ID,
		Products: make([]catalog.ProductDTO, 0, len(wishlist.Items)),
	}
	for i := range wishlist.Items {
		dto.Products = append(dto.Products, *catalog.ProductDTOFromModel(wishlist.Items[i].Product))
	}
	return dto
}
