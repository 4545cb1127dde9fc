package services_test

import (
	"testing"
	"time"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func code(t *testing.T) kernel.VerificationCode {
	t.Helper()
	c, err := kernel.NewVerificationCode("123456")
	require.NoError(t, err)
	return c
}

// orderWith builds an order in the given status for aggregation tests.
func orderWith(t *testing.T, productName string, price int64, status order.Status, customerID *kernel.UUID) *order.Order {
	t.Helper()

	var pickedUp *time.Time
	if status.IsCompleted() {
		at := time.Now().Add(-time.Hour)
		pickedUp = &at
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, "Buyer", productName, kernel.Product,
		"AutoServe", "Algiers", money(t, price), order.FullPayment, nil,
		code(t), "", status, pickedUp, time.Now().Add(-24*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func TestAnalyticsCalculator_TotalSales(t *testing.T) {
	calc := services.NewAnalyticsCalculator()

	t.Run("sums only completed orders", func(t *testing.T) {
		orders := []*order.Order{
			orderWith(t, "Brake Pads", 100, order.Delivered, nil),
			orderWith(t, "Air Filter", 200, order.PickedUp, nil),
			orderWith(t, "Gold Rims", 9999, order.Cancelled, nil),
			orderWith(t, "Oil Change", 500, order.Pending, nil),
		}

		assert.Equal(t, int64(300), calc.TotalSales(orders).Amount())
	})

	t.Run("zero for empty collection", func(t *testing.T) {
		assert.True(t, calc.TotalSales(nil).IsZero())
	})
}

func TestAnalyticsCalculator_BestSellingItem(t *testing.T) {
	calc := services.NewAnalyticsCalculator()

	t.Run("highest completed count wins", func(t *testing.T) {
		orders := []*order.Order{
			orderWith(t, "Brake Pads", 100, order.Delivered, nil),
			orderWith(t, "Brake Pads", 100, order.PickedUp, nil),
			orderWith(t, "Air Filter", 50, order.PickedUp, nil),
			orderWith(t, "Air Filter", 50, order.Pending, nil), // not completed, not counted
		}

		best, ok := calc.BestSellingItem(orders)

		require.True(t, ok)
		assert.Equal(t, "Brake Pads", best.ProductName)
		assert.Equal(t, 2, best.SalesCount)
	})

	t.Run("ties resolve to first encountered", func(t *testing.T) {
		orders := []*order.Order{
			orderWith(t, "Air Filter", 50, order.PickedUp, nil),
			orderWith(t, "Brake Pads", 100, order.Delivered, nil),
		}

		best, ok := calc.BestSellingItem(orders)

		require.True(t, ok)
		assert.Equal(t, "Air Filter", best.ProductName)
	})

	t.Run("no completed orders yields none", func(t *testing.T) {
		orders := []*order.Order{
			orderWith(t, "Air Filter", 50, order.Pending, nil),
		}

		_, ok := calc.BestSellingItem(orders)

		assert.False(t, ok)
	})
}

func TestAnalyticsCalculator_SalesByProduct(t *testing.T) {
	calc := services.NewAnalyticsCalculator()

	orders := []*order.Order{
		orderWith(t, "Brake Pads", 100, order.Delivered, nil),
		orderWith(t, "Brake Pads", 100, order.PickedUp, nil),
		orderWith(t, "Air Filter", 50, order.PickedUp, nil),
		orderWith(t, "Spark Plugs", 45, order.Delivered, nil),
		orderWith(t, "Spark Plugs", 45, order.Delivered, nil),
		orderWith(t, "Spark Plugs", 45, order.PickedUp, nil),
	}

	top := calc.SalesByProduct(orders, 2)

	require.Len(t, top, 2)
	assert.Equal(t, services.BestSeller{ProductName: "Spark Plugs", SalesCount: 3}, top[0])
	assert.Equal(t, services.BestSeller{ProductName: "Brake Pads", SalesCount: 2}, top[1])
}

func TestAnalyticsCalculator_CustomerRepeatRate(t *testing.T) {
	calc := services.NewAnalyticsCalculator()

	t.Run("counts customers with more than one order", func(t *testing.T) {
		repeatID := kernel.NewUUID()
		onceID := kernel.NewUUID()

		orders := []*order.Order{
			orderWith(t, "A", 1, order.Pending, &repeatID),
			orderWith(t, "B", 1, order.Delivered, &repeatID),
			orderWith(t, "C", 1, order.Cancelled, &repeatID),
			orderWith(t, "D", 1, order.PickedUp, &onceID),
			orderWith(t, "E", 1, order.Pending, nil), // walk-in, excluded
		}

		// 1 repeat customer of 2 distinct customers.
		assert.InDelta(t, 50.0, calc.CustomerRepeatRate(orders), 0.001)
	})

	t.Run("zero when no customers", func(t *testing.T) {
		orders := []*order.Order{orderWith(t, "A", 1, order.Pending, nil)}

		assert.Zero(t, calc.CustomerRepeatRate(orders))
		assert.Zero(t, calc.CustomerRepeatRate(nil))
	})
}

func TestAnalyticsCalculator_AverageRating(t *testing.T) {
	calc := services.NewAnalyticsCalculator()

	newCustomerWithRatings := func(t *testing.T, ratings ...int) *customer.Customer {
		t.Helper()
		reviews := make([]customer.Review, 0, len(ratings))
		for _, r := range ratings {
			review, err := customer.NewReview(kernel.NewUUID(), nil, r, "", time.Now())
			require.NoError(t, err)
			reviews = append(reviews, review)
		}
		c, err := customer.NewCustomer(
			kernel.NewUUID(), "Customer", "", "", money(t, 0), len(ratings), nil, reviews, time.Now(),
		)
		require.NoError(t, err)
		return c
	}

	t.Run("means ratings across all customers", func(t *testing.T) {
		customers := []*customer.Customer{
			newCustomerWithRatings(t, 5, 4),
			newCustomerWithRatings(t, 3),
		}

		avg := calc.AverageRating(customers)

		require.NotNil(t, avg)
		assert.InDelta(t, 4.0, *avg, 0.001)
	})

	t.Run("nil when no reviews exist", func(t *testing.T) {
		customers := []*customer.Customer{newCustomerWithRatings(t)}

		assert.Nil(t, calc.AverageRating(customers))
		assert.Nil(t, calc.AverageRating(nil))
	})
}

func TestAnalyticsCalculator_LowStockItems(t *testing.T) {
	calc := services.NewAnalyticsCalculator()

	newItem := func(t *testing.T, category kernel.ItemCategory, stock *int) *catalog.Item {
		t.Helper()
		item, err := catalog.NewItem(
			kernel.NewUUID(), "Item", category, "", money(t, 100), "",
			nil, stock, "", false, time.Now(),
		)
		require.NoError(t, err)
		return item
	}

	five, fifteen := 5, 15
	lowProduct := newItem(t, kernel.Product, &five)
	stockedProduct := newItem(t, kernel.Product, &fifteen)
	service := newItem(t, kernel.Service, nil)

	low := calc.LowStockItems([]*catalog.Item{lowProduct, stockedProduct, service})

	require.Len(t, low, 1)
	assert.True(t, low[0].ID().IsEqual(lowProduct.ID()))
}
