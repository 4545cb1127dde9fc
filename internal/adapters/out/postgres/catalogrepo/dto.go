// Package catalogrepo persists catalog items through GORM.
package catalogrepo

import (
	"time"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string
	Category        int `gorm:"index"`
	Subcategory     string
	Price           int64
	Description     string
	Images          []string `gorm:"serializer:json"`
	AvailableStock  *int
	ServiceDuration string
	IsFeatured      bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// TableName overrides GORM's default naming to use "store_items".
func (ItemDTO) TableName() string {
	return "store_items"
}

func fromDomain(item *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:              item.ID().Bytes(),
		Title:           item.Title(),
		Category:        int(item.Category()),
		Subcategory:     item.Subcategory(),
		Price:           item.Price().Amount(),
		Description:     item.Description(),
		Images:          item.Images(),
		AvailableStock:  item.AvailableStock(),
		ServiceDuration: item.ServiceDuration(),
		IsFeatured:      item.IsFeatured(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}

func toDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreItem(
		id,
		dto.Title,
		kernel.ItemCategory(dto.Category),
		dto.Subcategory,
		price,
		dto.Description,
		dto.Images,
		dto.AvailableStock,
		dto.ServiceDuration,
		dto.IsFeatured,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
