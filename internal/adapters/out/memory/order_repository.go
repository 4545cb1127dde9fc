package memory

import (
	"context"
	"sort"
	"sync"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/pkg/errs"
)

// OrderRepository is an in-memory implementation of ports.OrderRepository.
type OrderRepository struct {
	mu sync.RWMutex
	m  map[kernel.UUID]*order.Order
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{m: make(map[kernel.UUID]*order.Order)}
}

// Add stores a new order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("orderID")
	}
	r.m[aggregate.ID()] = aggregate
	return nil
}

// Update replaces an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	r.m[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.m[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return aggregate, nil
}

// GetAll returns every order, newest first.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(*order.Order) bool { return true }), nil
}

// GetAllInStatus returns orders in the given status, newest first.
func (r *OrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(o *order.Order) bool { return o.Status() == status }), nil
}

// GetAllWithInstallments returns non-terminal installment-plan orders.
func (r *OrderRepository) GetAllWithInstallments(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(o *order.Order) bool {
		return o.Installment() != nil && !o.Status().IsTerminal()
	}), nil
}

// snapshot collects matching orders sorted newest first. Callers must
// hold at least the read lock.
func (r *OrderRepository) snapshot(match func(*order.Order) bool) []*order.Order {
	orders := make([]*order.Order, 0, len(r.m))
	for _, o := range r.m {
		if match(o) {
			orders = append(orders, o)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders
}
