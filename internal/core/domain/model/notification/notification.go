// Package notification provides the fire-and-forget notification entity
// surfaced in the panel's bell menu. Delivery mechanics are out of scope;
// the sink port in core/ports is the boundary.
package notification

import (
	"fmt"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
)

// Type classifies a notification for icon and filter purposes.
type Type int

const (
	// UnknownType is the invalid zero value.
	UnknownType Type = iota

	// NewOrder announces a freshly created order.
	NewOrder

	// LowStock warns that a product fell below the stock threshold.
	LowStock

	// NewReview announces a customer review.
	NewReview

	// GeneralUpdate covers everything else, e.g. installment reminders.
	GeneralUpdate
)

func typeStrings() map[Type]string {
	return map[Type]string{
		NewOrder:      "new_order",
		LowStock:      "low_stock",
		NewReview:     "new_review",
		GeneralUpdate: "general_update",
	}
}

// TypeFromString parses the wire form ("new_order", "low_stock", ...).
func TypeFromString(s string) (Type, error) {
	for t, str := range typeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("notificationType",
		fmt.Errorf("%q is not a valid notification type", s))
}

// String returns the wire form, or "unknown".
func (t Type) String() string {
	if str, ok := typeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects the zero value and anything outside the enum.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notificationType",
			fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// Notification is a single bell-menu entry. RelatedID optionally points
// at the order or catalog item the message concerns.
type Notification struct {
	ID        kernel.UUID
	Message   string
	Type      Type
	RelatedID *kernel.UUID
	Read      bool
	Timestamp time.Time
}

// New creates an unread notification stamped with the given time.
func New(message string, notifType Type, relatedID *kernel.UUID, now time.Time) (Notification, error) {
	if message == "" {
		return Notification{}, errs.NewValueIsRequiredError("message")
	}
	if err := notifType.Validate(); err != nil {
		return Notification{}, err
	}

	return Notification{
		ID:        kernel.NewUUID(),
		Message:   message,
		Type:      notifType,
		RelatedID: relatedID,
		Read:      false,
		Timestamp: now,
	}, nil
}
