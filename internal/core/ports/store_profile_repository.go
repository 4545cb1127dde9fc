package ports

import (
	"context"

	"storepanel/internal/core/domain/model/store"
)

// StoreProfileRepository defines the persistence contract for the store profile.
// The panel manages a single store, so the profile is a singleton.
type StoreProfileRepository interface {
	// Get retrieves the store profile.
	Get(ctx context.Context) (*store.Profile, error)

	// Save persists the store profile, replacing the previous one.
	Save(ctx context.Context, profile *store.Profile) error
}
