// Package profilerepo persists the singleton store profile through GORM.
package profilerepo

import (
	"context"
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/store"
	"storepanel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileDTO represents the database structure for the store profile.
// The table holds a single row keyed by the store's id.
type ProfileDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string
	Phone            string
	WorkingHours     string
	Category         int
	Bio              string
	LogoURL          string
	LocationAddress  string
	MapCoordinates   string
	DeliveryZones    []string `gorm:"serializer:json"`
	ProximityVisible bool
}

// TableName overrides GORM's default naming to use "store_profile".
func (ProfileDTO) TableName() string {
	return "store_profile"
}

// GormStoreProfileRepository implements StoreProfileRepository using GORM.
type GormStoreProfileRepository struct {
	db *gorm.DB
}

// NewGormStoreProfileRepository creates a new GORM store profile repository.
func NewGormStoreProfileRepository(db *gorm.DB) *GormStoreProfileRepository {
	return &GormStoreProfileRepository{db: db}
}

// Get retrieves the store profile.
func (r *GormStoreProfileRepository) Get(ctx context.Context) (*store.Profile, error) {
	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storeProfile", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the store profile.
func (r *GormStoreProfileRepository) Save(ctx context.Context, profile *store.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

func fromDomain(profile *store.Profile) ProfileDTO {
	return ProfileDTO{
		ID:               profile.ID().Bytes(),
		Name:             profile.Name(),
		Phone:            profile.Phone(),
		WorkingHours:     profile.WorkingHours(),
		Category:         int(profile.StoreCategory()),
		Bio:              profile.Bio(),
		LogoURL:          profile.LogoURL(),
		LocationAddress:  profile.LocationAddress(),
		MapCoordinates:   profile.MapCoordinates(),
		DeliveryZones:    profile.DeliveryZones(),
		ProximityVisible: profile.ProximityVisible(),
	}
}

func toDomain(dto ProfileDTO) (*store.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return store.NewProfile(
		id,
		dto.Name,
		dto.Phone,
		dto.WorkingHours,
		store.Category(dto.Category),
		dto.Bio,
		dto.LogoURL,
		dto.LocationAddress,
		dto.MapCoordinates,
		dto.DeliveryZones,
		dto.ProximityVisible,
	)
}
