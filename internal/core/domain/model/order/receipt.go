package order

import (
	"time"

	"storepanel/internal/core/domain/model/kernel"
)

// Receipt is the read-only completion record of a finished order, shown
// to the operator after a successful pickup or delivery.
type Receipt struct {
	OrderID         kernel.UUID
	BuyerName       string
	ProductName     string
	StoreName       string
	Price           kernel.Money
	PaymentType     PaymentType
	Installment     *InstallmentDetails
	Status          Status
	PickupTimestamp time.Time
}

// Receipt projects the receipt-relevant fields of a completed order.
// Returns ErrOrderNotCompleted while the order is still in flight or was
// cancelled; callers are expected to check IsAwaitingVerification first.
func (o *Order) Receipt() (Receipt, error) {
	if !o.status.IsCompleted() {
		return Receipt{}, ErrOrderNotCompleted
	}

	return Receipt{
		OrderID:         o.id,
		BuyerName:       o.buyerName,
		ProductName:     o.productName,
		StoreName:       o.storeName,
		Price:           o.price,
		PaymentType:     o.paymentType,
		Installment:     o.installment,
		Status:          o.status,
		PickupTimestamp: *o.pickupTimestamp,
	}, nil
}
