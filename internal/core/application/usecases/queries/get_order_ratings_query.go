package queries

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrGetOrderRatingsQueryIsNotConstructed is returned when a
// GetOrderRatingsQuery was not created via its constructor.
var ErrGetOrderRatingsQueryIsNotConstructed = errors.New(
	"GetOrderRatingsQuery must be created via NewGetOrderRatingsQuery constructor",
)

// GetOrderRatingsQuery retrieves every rating submitted for one order. The
// UI uses this to decide whether the current user has already rated.
type GetOrderRatingsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderRatingsQuery creates a query for an order's ratings.
func NewGetOrderRatingsQuery(orderID kernel.ID) (GetOrderRatingsQuery, error) {
	q := GetOrderRatingsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderRatingsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderRatingsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRatingsQueryIsNotConstructed)
}

// OrderID returns the order whose ratings are requested.
func (q GetOrderRatingsQuery) OrderID() kernel.ID { return q.orderID }

func (q *GetOrderRatingsQuery) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	q.orderID = orderID
	return nil
}
