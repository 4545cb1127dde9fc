package queries

import (
	"context"

	"storepanel/internal/core/domain/services"
	"storepanel/internal/core/ports"
)

// GetAnalyticsQueryHandler computes the dashboard figures from the
// order, catalog and customer collections.
type GetAnalyticsQueryHandler struct {
	orders     ports.OrderRepository
	catalog    ports.CatalogRepository
	customers  ports.CustomerRepository
	calculator services.AnalyticsCalculator
}

// NewGetAnalyticsQueryHandler creates a handler for the dashboard query.
func NewGetAnalyticsQueryHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogRepository,
	customers ports.CustomerRepository,
) GetAnalyticsQueryHandler {
	return GetAnalyticsQueryHandler{
		orders:     orders,
		catalog:    catalog,
		customers:  customers,
		calculator: services.NewAnalyticsCalculator(),
	}
}

// Handle executes the query. All figures are computed from the same
// snapshot of the collections, so they are mutually consistent.
func (h GetAnalyticsQueryHandler) Handle(ctx context.Context, query GetAnalyticsQuery) (AnalyticsResponse, error) {
	if err := query.Validate(); err != nil {
		return AnalyticsResponse{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return AnalyticsResponse{}, err
	}

	items, err := h.catalog.GetAll(ctx)
	if err != nil {
		return AnalyticsResponse{}, err
	}

	customers, err := h.customers.GetAll(ctx)
	if err != nil {
		return AnalyticsResponse{}, err
	}

	response := AnalyticsResponse{
		TotalSales:         h.calculator.TotalSales(orders),
		CustomerRepeatRate: h.calculator.CustomerRepeatRate(orders),
		AverageRating:      h.calculator.AverageRating(customers),
	}

	if best, ok := h.calculator.BestSellingItem(orders); ok {
		response.BestSeller = &best
	}
	if query.TopProducts() > 0 {
		response.SalesByProduct = h.calculator.SalesByProduct(orders, query.TopProducts())
	}

	for _, item := range h.calculator.LowStockItems(items) {
		response.LowStockItems = append(response.LowStockItems, LowStockItemResponse{
			ItemID:         item.ID(),
			Title:          item.Title(),
			AvailableStock: *item.AvailableStock(),
		})
	}

	return response, nil
}
