package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// A new order starts in pending status with no farmer or baler assigned.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	userRepo  ports.UserRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orderRepo ports.OrderRepository, userRepo ports.UserRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orderRepo: orderRepo, userRepo: userRepo}
}

// Handle processes the order creation command. The requesting user must exist
// and hold the customer role. Returns the created order aggregate so the
// caller can build the response payload.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customer, err := h.userRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if customer.Role() != user.Customer {
		return nil, errs.NewValueIsInvalidError("user_type: only customers can create orders")
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.BaleType(),
		cmd.Quantity(),
		cmd.DeliveryAddress(),
		cmd.DeliveryLocation(),
		cmd.PickupDate(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err := h.orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
