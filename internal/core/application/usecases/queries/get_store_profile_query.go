package queries

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/store"
	"storepanel/internal/pkg/guard"
)

var ErrGetStoreProfileQueryIsNotConstructed = errors.New(
	"GetStoreProfileQuery must be created via NewGetStoreProfileQuery constructor",
)

// GetStoreProfileQuery retrieves the store's profile.
type GetStoreProfileQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStoreProfileQuery creates a profile query.
func NewGetStoreProfileQuery() GetStoreProfileQuery {
	return GetStoreProfileQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStoreProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreProfileQueryIsNotConstructed)
}

// StoreProfileResponse is the read model of the store profile.
type StoreProfileResponse struct {
	ID               kernel.UUID
	Name             string
	Phone            string
	WorkingHours     string
	Category         store.Category
	Bio              string
	LogoURL          string
	LocationAddress  string
	MapCoordinates   string
	DeliveryZones    []string
	ProximityVisible bool
}

// NewStoreProfileResponse projects the profile into its read model.
func NewStoreProfileResponse(p *store.Profile) StoreProfileResponse {
	return StoreProfileResponse{
		ID:               p.ID(),
		Name:             p.Name(),
		Phone:            p.Phone(),
		WorkingHours:     p.WorkingHours(),
		Category:         p.StoreCategory(),
		Bio:              p.Bio(),
		LogoURL:          p.LogoURL(),
		LocationAddress:  p.LocationAddress(),
		MapCoordinates:   p.MapCoordinates(),
		DeliveryZones:    p.DeliveryZones(),
		ProximityVisible: p.ProximityVisible(),
	}
}
