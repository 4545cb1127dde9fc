package queries

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/services"
	"storepanel/internal/pkg/guard"
)

var ErrGetAnalyticsQueryIsNotConstructed = errors.New(
	"GetAnalyticsQuery must be created via NewGetAnalyticsQuery constructor",
)

// GetAnalyticsQuery computes the dashboard figures. The figures are
// always derived from the current collections; nothing is cached.
type GetAnalyticsQuery struct {
	topProducts int

	guard guard.ConstructorGuard
}

// NewGetAnalyticsQuery creates an analytics query. topProducts bounds the
// sales-by-product breakdown; zero or negative means no breakdown.
func NewGetAnalyticsQuery(topProducts int) (GetAnalyticsQuery, error) {
	return GetAnalyticsQuery{
		topProducts: topProducts,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalyticsQueryIsNotConstructed)
}

// TopProducts returns the breakdown size limit.
func (q GetAnalyticsQuery) TopProducts() int {
	return q.topProducts
}

// AnalyticsResponse carries every dashboard figure in one response.
//
// BestSeller is nil when no order has completed yet, and AverageRating
// is nil when the store has no reviews. Consumers render both as "N/A"
// rather than zero, which would misread as a real value.
type AnalyticsResponse struct {
	TotalSales         kernel.Money
	BestSeller         *services.BestSeller
	SalesByProduct     []services.BestSeller
	CustomerRepeatRate float64
	AverageRating      *float64
	LowStockItems      []LowStockItemResponse
}

// LowStockItemResponse is a product flagged by the low-stock scan.
type LowStockItemResponse struct {
	ItemID         kernel.UUID
	Title          string
	AvailableStock int
}
