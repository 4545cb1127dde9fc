package queries

import (
	"context"

	"storepanel/internal/core/ports"
)

// GetStoreProfileQueryHandler serves the store profile.
type GetStoreProfileQueryHandler struct {
	profiles ports.StoreProfileRepository
}

// NewGetStoreProfileQueryHandler creates a handler for profile lookups.
func NewGetStoreProfileQueryHandler(profiles ports.StoreProfileRepository) GetStoreProfileQueryHandler {
	return GetStoreProfileQueryHandler{profiles: profiles}
}

// Handle executes the query.
func (h GetStoreProfileQueryHandler) Handle(
	ctx context.Context, query GetStoreProfileQuery,
) (StoreProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return StoreProfileResponse{}, err
	}

	profile, err := h.profiles.Get(ctx)
	if err != nil {
		return StoreProfileResponse{}, err
	}

	return NewStoreProfileResponse(profile), nil
}
