package queries

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/pkg/guard"
)

// ErrGetOrdersQueryIsNotConstructed is returned when a GetOrdersQuery was not
// created via its constructor.
var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves enriched order listings. All filters are optional
// and combine with AND semantics; a zero filter lists every order.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.ID
	farmerID   *kernel.ID
	balerID    *kernel.ID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. Nil filter values are
// skipped.
func NewGetOrdersQuery(customerID, farmerID, balerID *kernel.ID, status *order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setCustomerID(customerID),
		q.setFarmerID(farmerID),
		q.setBalerID(balerID),
		q.setStatus(status),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, or nil.
func (q GetOrdersQuery) CustomerID() *kernel.ID { return q.customerID }

// FarmerID returns the farmer filter, or nil.
func (q GetOrdersQuery) FarmerID() *kernel.ID { return q.farmerID }

// BalerID returns the baler filter, or nil.
func (q GetOrdersQuery) BalerID() *kernel.ID { return q.balerID }

// Status returns the status filter, or nil.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

func (q *GetOrdersQuery) setCustomerID(customerID *kernel.ID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

func (q *GetOrdersQuery) setFarmerID(farmerID *kernel.ID) error {
	if farmerID == nil {
		return nil
	}
	if err := farmerID.Validate(); err != nil {
		return err
	}
	q.farmerID = farmerID
	return nil
}

func (q *GetOrdersQuery) setBalerID(balerID *kernel.ID) error {
	if balerID == nil {
		return nil
	}
	if err := balerID.Validate(); err != nil {
		return err
	}
	q.balerID = balerID
	return nil
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}
