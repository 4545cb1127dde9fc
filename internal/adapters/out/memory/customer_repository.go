package memory

import (
	"context"
	"sort"
	"sync"

	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
)

// CustomerRepository is an in-memory implementation of ports.CustomerRepository.
// Customer records come from seeding; the panel never writes them.
type CustomerRepository struct {
	mu sync.RWMutex
	m  map[kernel.UUID]*customer.Customer
}

// NewCustomerRepository creates an empty in-memory customer repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{m: make(map[kernel.UUID]*customer.Customer)}
}

// Put stores a customer record. Used by seeding only.
func (r *CustomerRepository) Put(c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[c.ID()] = c
	return nil
}

// Get retrieves a customer by ID.
func (r *CustomerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.m[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return c, nil
}

// GetAll returns every customer sorted by name.
func (r *CustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*customer.Customer, 0, len(r.m))
	for _, c := range r.m {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Name() < customers[j].Name()
	})
	return customers, nil
}

// GetAllReviews returns every review, newest first.
func (r *CustomerRepository) GetAllReviews(_ context.Context) ([]customer.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []customer.Review
	for _, c := range r.m {
		reviews = append(reviews, c.Reviews()...)
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}
