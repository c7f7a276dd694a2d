package ports

import (
	"context"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
)

// OrderFilter narrows List results. Nil fields match everything.
type OrderFilter struct {
	CustomerID *kernel.ID
	FarmerID   *kernel.ID
	BalerID    *kernel.ID
	Status     *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
// The repository is storage shape only; business rules live in the aggregate
// and the command handlers, and errors propagate to them unchanged.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. It fails with
	// errs.ErrObjectNotFound if the order is absent and with
	// errs.ErrVersionIsInvalid if the stored record was modified since the
	// aggregate was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Fails with errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List retrieves orders matching the filter, sorted by creation time
	// descending (newest first).
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
