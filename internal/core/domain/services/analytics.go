package services

import (
	"sort"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
)

// AnalyticsCalculator is a domain service computing the dashboard figures
// from snapshots of the order, catalog and customer collections.
//
// All methods are pure single-pass aggregations with no mutation and no
// side effects. Results are valid for the snapshot they were computed
// from and must be recomputed whenever the collections change.
type AnalyticsCalculator struct{}

// NewAnalyticsCalculator creates an AnalyticsCalculator.
func NewAnalyticsCalculator() AnalyticsCalculator {
	return AnalyticsCalculator{}
}

// BestSeller is a product name with its completed-sales count.
type BestSeller struct {
	ProductName string
	SalesCount  int
}

// TotalSales sums the price of completed orders (Picked Up or Delivered).
// Cancelled and in-flight orders contribute nothing.
func (AnalyticsCalculator) TotalSales(orders []*order.Order) kernel.Money {
	var total kernel.Money
	for _, o := range orders {
		if o.Status().IsCompleted() {
			total = total.Add(o.Price())
		}
	}
	return total
}

// BestSellingItem returns the product name occurring most often among
// completed orders. Ties resolve to the first product encountered in
// iteration order, which is deterministic because orders is a slice.
// The second return value is false when there are no completed orders.
func (AnalyticsCalculator) BestSellingItem(orders []*order.Order) (BestSeller, bool) {
	counts := make(map[string]int)
	var names []string

	for _, o := range orders {
		if !o.Status().IsCompleted() {
			continue
		}
		if _, seen := counts[o.ProductName()]; !seen {
			names = append(names, o.ProductName())
		}
		counts[o.ProductName()]++
	}

	best := BestSeller{}
	for _, name := range names {
		if counts[name] > best.SalesCount {
			best = BestSeller{ProductName: name, SalesCount: counts[name]}
		}
	}
	return best, best.SalesCount > 0
}

// SalesByProduct returns the top-N products by completed-sales count in
// descending order. Equal counts keep first-encountered order.
func (AnalyticsCalculator) SalesByProduct(orders []*order.Order, topN int) []BestSeller {
	counts := make(map[string]int)
	var names []string

	for _, o := range orders {
		if !o.Status().IsCompleted() {
			continue
		}
		if _, seen := counts[o.ProductName()]; !seen {
			names = append(names, o.ProductName())
		}
		counts[o.ProductName()]++
	}

	sellers := make([]BestSeller, 0, len(names))
	for _, name := range names {
		sellers = append(sellers, BestSeller{ProductName: name, SalesCount: counts[name]})
	}
	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].SalesCount > sellers[j].SalesCount
	})

	if topN > 0 && len(sellers) > topN {
		sellers = sellers[:topN]
	}
	return sellers
}

// CustomerRepeatRate returns the percentage of distinct customers with
// more than one order, over all orders regardless of status. Orders with
// no customer record are excluded. Returns 0 when there are no customers.
func (AnalyticsCalculator) CustomerRepeatRate(orders []*order.Order) float64 {
	counts := make(map[kernel.UUID]int)
	for _, o := range orders {
		if id := o.CustomerID(); id != nil {
			counts[*id]++
		}
	}

	if len(counts) == 0 {
		return 0
	}

	repeat := 0
	for _, n := range counts {
		if n > 1 {
			repeat++
		}
	}
	return float64(repeat) / float64(len(counts)) * 100
}

// AverageRating returns the mean of all review ratings across all
// customers, or nil when no reviews exist ("N/A" on the dashboard).
func (AnalyticsCalculator) AverageRating(customers []*customer.Customer) *float64 {
	sum, count := 0, 0
	for _, c := range customers {
		for _, review := range c.Reviews() {
			sum += review.Rating
			count++
		}
	}

	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count)
	return &avg
}

// LowStockItems returns the catalog items flagged as low stock: products
// with a known stock level below the alert threshold.
func (AnalyticsCalculator) LowStockItems(items []*catalog.Item) []*catalog.Item {
	low := make([]*catalog.Item, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low
}
