package analytics

import "github.com/google/uuid"

// TopProductDTO is one entry in the best-sellers ranking.
type TopProductDTO struct {
	ProductID    uuid.UUID `json:"product_id"`
	Title        string    `json:"title"`
	OrderedCount int64     `json:"ordered_count"`
}

// SummaryDTO is the admin sales overview.
type SummaryDTO struct {
	TotalRevenue string          `json:"total_revenue"`
	TotalOrders  int64           `json:"total_orders"`
	PaidOrders   int64           `json:"paid_orders"`
	TopProducts  []TopProductDTO `json:"top_products"`
}
