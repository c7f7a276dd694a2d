package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order on behalf of its customer.
// Cancellation is legal from every non-terminal status.
type CancelOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewCancelOrderCommandHandler creates a handler for customer cancellations.
func NewCancelOrderCommandHandler(orderRepo ports.OrderRepository) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orderRepo: orderRepo}
}

// Handle processes the cancellation. Only the customer who created the order
// may cancel it through this command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, errs.NewValueIsInvalidError("customer_id: only the order's customer can cancel it")
	}

	if err := aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err := h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
