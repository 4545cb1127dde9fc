package memory

import (
	"context"
	"sort"
	"sync"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
)

// CatalogRepository is an in-memory implementation of ports.CatalogRepository.
type CatalogRepository struct {
	mu sync.RWMutex
	m  map[kernel.UUID]*catalog.Item
}

// NewCatalogRepository creates an empty in-memory catalog repository.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{m: make(map[kernel.UUID]*catalog.Item)}
}

// Add stores a new catalog item.
func (r *CatalogRepository) Add(_ context.Context, aggregate *catalog.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("itemID")
	}
	r.m[aggregate.ID()] = aggregate
	return nil
}

// Update replaces an existing catalog item.
func (r *CatalogRepository) Update(_ context.Context, aggregate *catalog.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}
	r.m[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a catalog item by ID.
func (r *CatalogRepository) Get(_ context.Context, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.m[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", id.String())
	}
	return item, nil
}

// GetAll returns every catalog item, newest first.
func (r *CatalogRepository) GetAll(_ context.Context) ([]*catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(*catalog.Item) bool { return true }), nil
}

// GetAllLowStock returns products below the low-stock threshold.
func (r *CatalogRepository) GetAllLowStock(_ context.Context) ([]*catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot((*catalog.Item).IsLowStock), nil
}

// Remove deletes a catalog item.
func (r *CatalogRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m[id]; !exists {
		return errs.NewObjectNotFoundError("item", id.String())
	}
	delete(r.m, id)
	return nil
}

func (r *CatalogRepository) snapshot(match func(*catalog.Item) bool) []*catalog.Item {
	items := make([]*catalog.Item, 0, len(r.m))
	for _, item := range r.m {
		if match(item) {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt().After(items[j].CreatedAt())
	})
	return items
}
