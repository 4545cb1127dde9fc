package queries

import (
	"errors"

	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the order book, optionally filtered by
// lifecycle status, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(nil)           // every order
//	query, err = NewListOrdersQuery(&pendingStatus) // only Pending
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. A nil status means
// no filtering.
func NewListOrdersQuery(status *order.Status) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}
