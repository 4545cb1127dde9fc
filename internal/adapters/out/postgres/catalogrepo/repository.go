package catalogrepo

import (
	"context"
	"errors"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"

	"gorm.io/gorm"
)

// lowStockThreshold mirrors the domain's low-stock cutoff for querying.
const lowStockThreshold = 10

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item to the database.
func (r *GormCatalogRepository) Add(ctx context.Context, aggregate *catalog.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog item to the database.
func (r *GormCatalogRepository) Update(ctx context.Context, aggregate *catalog.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog item by ID.
func (r *GormCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every catalog item.
func (r *GormCatalogRepository) GetAll(ctx context.Context) ([]*catalog.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllLowStock retrieves products below the low-stock threshold.
func (r *GormCatalogRepository) GetAllLowStock(ctx context.Context) ([]*catalog.Item, error) {
	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Where("category = ?", int(kernel.Product)).
		Where("available_stock IS NOT NULL AND available_stock < ?", lowStockThreshold).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Remove deletes a catalog item.
func (r *GormCatalogRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}
	return nil
}

func toDomainSlice(dtos []ItemDTO) ([]*catalog.Item, error) {
	items := make([]*catalog.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
