package queries_test

import (
	"testing"
	"time"

	"storepanel/internal/core/application/usecases/queries"
	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lowStockProduct(t *testing.T, title string, stock int) *catalog.Item {
	t.Helper()
	price, err := kernel.NewMoney(1500)
	require.NoError(t, err)
	item, err := catalog.NewItem(
		kernel.NewUUID(), title, kernel.Product, "Filters", price, "", nil,
		&stock, "", false, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return item
}

func reviewer(t *testing.T, rating int) *customer.Customer {
	t.Helper()
	review, err := customer.NewReview(kernel.NewUUID(), nil, rating, "solid",
		time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	spent, err := kernel.NewMoney(9000)
	require.NoError(t, err)

	c, err := customer.NewCustomer(
		kernel.NewUUID(), "Karim Z.", "+213 555 44 55 66", "karim@example.dz",
		spent, 3, nil, []customer.Review{review},
		time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return c
}

func TestGetAnalyticsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	repeat := kernel.NewUUID()
	orders := []*order.Order{
		orderInStatus("Brake Pads", 100, order.Delivered, &repeat),
		orderInStatus("Brake Pads", 200, order.PickedUp, &repeat),
		orderInStatus("Oil Filter", 9999, order.Cancelled, nil),
	}
	items := []*catalog.Item{
		lowStockProduct(t, "Spark Plug", 5),
		lowStockProduct(t, "Air Filter", 40),
	}
	customers := []*customer.Customer{reviewer(t, 4), reviewer(t, 5)}

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAll", mock.Anything).Return(orders, nil).Once()
	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetAll", mock.Anything).Return(items, nil).Once()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("GetAll", mock.Anything).Return(customers, nil).Once()

	h := queries.NewGetAnalyticsQueryHandler(orderRepo, catalogRepo, customerRepo)
	query, err := queries.NewGetAnalyticsQuery(5)
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)

	// Cancelled orders contribute nothing to sales.
	assert.Equal(t, int64(300), response.TotalSales.Amount())

	require.NotNil(t, response.BestSeller)
	assert.Equal(t, "Brake Pads", response.BestSeller.ProductName)
	assert.Equal(t, 2, response.BestSeller.SalesCount)

	// One distinct customer, and they ordered more than once.
	assert.InDelta(t, 100.0, response.CustomerRepeatRate, 0.001)

	require.NotNil(t, response.AverageRating)
	assert.InDelta(t, 4.5, *response.AverageRating, 0.001)

	require.Len(t, response.LowStockItems, 1)
	assert.Equal(t, "Spark Plug", response.LowStockItems[0].Title)
	assert.Equal(t, 5, response.LowStockItems[0].AvailableStock)

	require.Len(t, response.SalesByProduct, 1)
	assert.Equal(t, "Brake Pads", response.SalesByProduct[0].ProductName)
}

func TestGetAnalyticsQueryHandler_Handle_EmptyStore(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAll", mock.Anything).Return([]*order.Order{}, nil).Once()
	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetAll", mock.Anything).Return([]*catalog.Item{}, nil).Once()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("GetAll", mock.Anything).Return([]*customer.Customer{}, nil).Once()

	h := queries.NewGetAnalyticsQueryHandler(orderRepo, catalogRepo, customerRepo)
	query, err := queries.NewGetAnalyticsQuery(0)
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, response.TotalSales.IsZero())
	assert.Nil(t, response.BestSeller)
	assert.Nil(t, response.AverageRating)
	assert.Zero(t, response.CustomerRepeatRate)
	assert.Empty(t, response.LowStockItems)
	assert.Empty(t, response.SalesByProduct)
}
