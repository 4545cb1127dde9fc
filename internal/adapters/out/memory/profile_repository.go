package memory

import (
	"context"
	"sync"

	"storepanel/internal/core/domain/model/store"
	"storepanel/internal/pkg/errs"
)

// StoreProfileRepository is an in-memory implementation of
// ports.StoreProfileRepository. The profile is a singleton.
type StoreProfileRepository struct {
	mu      sync.RWMutex
	profile *store.Profile
}

// NewStoreProfileRepository creates an empty in-memory profile repository.
func NewStoreProfileRepository() *StoreProfileRepository {
	return &StoreProfileRepository{}
}

// Get retrieves the store profile.
func (r *StoreProfileRepository) Get(_ context.Context) (*store.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return nil, errs.NewObjectNotFoundError("storeProfile", nil)
	}
	return r.profile, nil
}

// Save persists the store profile, replacing the previous one.
func (r *StoreProfileRepository) Save(_ context.Context, profile *store.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = profile
	return nil
}
