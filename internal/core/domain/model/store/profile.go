// Package store provides the store profile aggregate: the single editable
// identity record of the business shown and edited in the panel.
package store

import (
	"errors"
	"fmt"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through NewProfile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile")

// Category describes what the business sells.
type Category int

const (
	// UnknownCategory is the invalid zero value.
	UnknownCategory Category = iota

	// CarParts sells physical parts only.
	CarParts

	// CarServices performs workshop services only.
	CarServices

	// Both sells parts and performs services.
	Both
)

func categoryStrings() map[Category]string {
	return map[Category]string{
		CarParts:    "Car Parts",
		CarServices: "Car Services",
		Both:        "Both",
	}
}

// CategoryFromString parses the display form.
func CategoryFromString(s string) (Category, error) {
	for category, str := range categoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("storeCategory",
		fmt.Errorf("%q is not a valid store category", s))
}

// String returns the display form, or "Unknown".
func (c Category) String() string {
	if str, ok := categoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects the zero value and anything outside the enum.
func (c Category) Validate() error {
	if _, ok := categoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("storeCategory",
			fmt.Errorf("%d is not a valid store category", c))
	}
	return nil
}

// Profile is the store's identity record. The panel edits it through
// partial updates; the identifier never changes.
type Profile struct {
	id               kernel.UUID
	name             string
	phone            string
	workingHours     string
	category         Category
	bio              string
	logoURL          string
	locationAddress  string
	mapCoordinates   string
	deliveryZones    []string
	proximityVisible bool

	guard guard.ConstructorGuard
}

// NewProfile creates a store profile.
func NewProfile(
	id kernel.UUID,
	name string,
	phone string,
	workingHours string,
	category Category,
	bio string,
	logoURL string,
	locationAddress string,
	mapCoordinates string,
	deliveryZones []string,
	proximityVisible bool,
) (*Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	return &Profile{
		id:               id,
		name:             name,
		phone:            phone,
		workingHours:     workingHours,
		category:         category,
		bio:              bio,
		logoURL:          logoURL,
		locationAddress:  locationAddress,
		mapCoordinates:   mapCoordinates,
		deliveryZones:    deliveryZones,
		proximityVisible: proximityVisible,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Profile was built through NewProfile.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the profile's identifier.
func (p *Profile) ID() kernel.UUID { return p.id }

// Name returns the store name.
func (p *Profile) Name() string { return p.name }

// Phone returns the contact phone.
func (p *Profile) Phone() string { return p.phone }

// WorkingHours returns the opening-hours text.
func (p *Profile) WorkingHours() string { return p.workingHours }

// StoreCategory returns what the business sells.
func (p *Profile) StoreCategory() Category { return p.category }

// Bio returns the store description.
func (p *Profile) Bio() string { return p.bio }

// LogoURL returns the logo image URL.
func (p *Profile) LogoURL() string { return p.logoURL }

// LocationAddress returns the street address.
func (p *Profile) LocationAddress() string { return p.locationAddress }

// MapCoordinates returns the display coordinates text.
func (p *Profile) MapCoordinates() string { return p.mapCoordinates }

// DeliveryZones returns the served zones.
func (p *Profile) DeliveryZones() []string { return p.deliveryZones }

// ProximityVisible reports whether the store shows in proximity search.
func (p *Profile) ProximityVisible() bool { return p.proximityVisible }

// ProfilePatch carries a partial profile update. Nil fields are left
// unchanged, matching the merge semantics of the panel's profile form.
type ProfilePatch struct {
	Name             *string
	Phone            *string
	WorkingHours     *string
	Category         *Category
	Bio              *string
	LogoURL          *string
	LocationAddress  *string
	MapCoordinates   *string
	DeliveryZones    *[]string
	ProximityVisible *bool
}

// Apply merges a patch into the profile. The id is immutable; an empty
// name or invalid category in the patch is rejected.
func (p *Profile) Apply(patch ProfilePatch) error {
	if patch.Name != nil {
		if *patch.Name == "" {
			return errs.NewValueIsRequiredError("name")
		}
		p.name = *patch.Name
	}
	if patch.Category != nil {
		if err := patch.Category.Validate(); err != nil {
			return err
		}
		p.category = *patch.Category
	}
	if patch.Phone != nil {
		p.phone = *patch.Phone
	}
	if patch.WorkingHours != nil {
		p.workingHours = *patch.WorkingHours
	}
	if patch.Bio != nil {
		p.bio = *patch.Bio
	}
	if patch.LogoURL != nil {
		p.logoURL = *patch.LogoURL
	}
	if patch.LocationAddress != nil {
		p.locationAddress = *patch.LocationAddress
	}
	if patch.MapCoordinates != nil {
		p.mapCoordinates = *patch.MapCoordinates
	}
	if patch.DeliveryZones != nil {
		p.deliveryZones = *patch.DeliveryZones
	}
	if patch.ProximityVisible != nil {
		p.proximityVisible = *patch.ProximityVisible
	}
	return nil
}
