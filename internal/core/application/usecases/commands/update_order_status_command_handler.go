package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a lifecycle transition to an order.
// The transition to delivered stamps the delivery timestamp.
type UpdateOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(orderRepo ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orderRepo: orderRepo}
}

// Handle processes the status change and returns the updated aggregate.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.ChangeStatus(cmd.Next()); err != nil {
		return nil, err
	}

	if err := h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
