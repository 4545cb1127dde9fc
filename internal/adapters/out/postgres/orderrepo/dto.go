// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and creation time for the panel's filtered listings.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID  *uuid.UUID `gorm:"type:uuid;index"`
	BuyerName   string
	ProductName string
	Category    int
	StoreName   string
	Location    string
	Price       int64
	PaymentType int

	Installment InstallmentDTO `gorm:"embedded;embeddedPrefix:installment_"`

	VerificationCode string
	Notes            string
	Status           int `gorm:"index"`
	PickupTimestamp  *time.Time
	CreatedAt        time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// InstallmentDTO represents the embedded payment schedule columns within
// the order table. All columns are null for full-payment orders.
type InstallmentDTO struct {
	PlanMonths    *int
	MonthlyAmount *int64
	Paid          *int
	NextDueDate   *time.Time
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	var installment InstallmentDTO
	if details := aggregate.Installment(); details != nil {
		planMonths := details.PlanMonths()
		monthly := details.MonthlyAmount().Amount()
		paid := details.InstallmentsPaid()
		installment = InstallmentDTO{
			PlanMonths:    &planMonths,
			MonthlyAmount: &monthly,
			Paid:          &paid,
			NextDueDate:   details.NextDueDate(),
		}
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       customerID,
		BuyerName:        aggregate.BuyerName(),
		ProductName:      aggregate.ProductName(),
		Category:         int(aggregate.Category()),
		StoreName:        aggregate.StoreName(),
		Location:         aggregate.Location(),
		Price:            aggregate.Price().Amount(),
		PaymentType:      int(aggregate.PaymentType()),
		Installment:      installment,
		VerificationCode: aggregate.VerificationCode().String(),
		Notes:            aggregate.Notes(),
		Status:           int(aggregate.Status()),
		PickupTimestamp:  aggregate.PickupTimestamp(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so that every
// invariant is re-checked on the way out of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewVerificationCode(dto.VerificationCode)
	if err != nil {
		return nil, err
	}

	var installment *order.InstallmentDetails
	if dto.Installment.PlanMonths != nil {
		monthly, moneyErr := kernel.NewMoney(*dto.Installment.MonthlyAmount)
		if moneyErr != nil {
			return nil, moneyErr
		}

		details, detailsErr := order.NewInstallmentDetails(
			*dto.Installment.PlanMonths, monthly, *dto.Installment.Paid, dto.Installment.NextDueDate,
		)
		if detailsErr != nil {
			return nil, detailsErr
		}
		installment = &details
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.BuyerName,
		dto.ProductName,
		kernel.ItemCategory(dto.Category),
		dto.StoreName,
		dto.Location,
		price,
		order.PaymentType(dto.PaymentType),
		installment,
		code,
		dto.Notes,
		order.Status(dto.Status),
		dto.PickupTimestamp,
		dto.CreatedAt,
	)
}
