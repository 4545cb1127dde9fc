// Package customerrepo reads customer records and reviews through GORM.
// Customers are written by the marketplace side, never by the panel, so
// this repository is read-only and lives outside the unit of work.
package customerrepo

import (
	"context"
	"errors"
	"time"

	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Phone         string
	Email         string
	TotalSpent    int64
	OrderCount    int
	LastOrderDate *time.Time
	CreatedAt     time.Time

	Reviews []ReviewDTO `gorm:"foreignKey:CustomerID"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// ReviewDTO represents a review row attached to a customer.
type ReviewDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	OrderID    uuid.UUID  `gorm:"type:uuid"`
	ItemID     *uuid.UUID `gorm:"type:uuid"`
	Rating     int
	Text       string
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Get retrieves a customer with their reviews.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).Preload("Reviews").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every customer with their reviews.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Preload("Reviews").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// GetAllReviews retrieves every review left for the store.
func (r *GormCustomerRepository) GetAllReviews(ctx context.Context) ([]customer.Review, error) {
	var dtos []ReviewDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	reviews := make([]customer.Review, 0, len(dtos))
	for _, dto := range dtos {
		review, err := reviewToDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	totalSpent, err := kernel.NewMoney(dto.TotalSpent)
	if err != nil {
		return nil, err
	}

	reviews := make([]customer.Review, 0, len(dto.Reviews))
	for _, reviewDTO := range dto.Reviews {
		review, reviewErr := reviewToDomain(reviewDTO)
		if reviewErr != nil {
			return nil, reviewErr
		}
		reviews = append(reviews, review)
	}

	return customer.NewCustomer(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		totalSpent,
		dto.OrderCount,
		dto.LastOrderDate,
		reviews,
		dto.CreatedAt,
	)
}

func reviewToDomain(dto ReviewDTO) (customer.Review, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return customer.Review{}, err
	}

	var itemID *kernel.UUID
	if dto.ItemID != nil {
		iID, itemErr := kernel.UUIDFromBytes((*dto.ItemID)[:])
		if itemErr != nil {
			return customer.Review{}, itemErr
		}
		itemID = &iID
	}

	return customer.NewReview(orderID, itemID, dto.Rating, dto.Text, dto.CreatedAt)
}
