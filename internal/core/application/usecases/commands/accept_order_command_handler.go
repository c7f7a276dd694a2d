package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// AcceptOrderCommandHandler moves a pending order to farmer_accepted.
// Re-accepting by the same farmer is a no-op, so a double-tapped accept
// button never surfaces an error.
type AcceptOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	userRepo  ports.UserRepository
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(orderRepo ports.OrderRepository, userRepo ports.UserRepository) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{orderRepo: orderRepo, userRepo: userRepo}
}

// Handle processes the accept command. The accepting user must exist and hold
// the farmer role. Returns the updated order aggregate.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	farmer, err := h.userRepo.Get(ctx, cmd.FarmerID())
	if err != nil {
		return nil, err
	}
	if farmer.Role() != user.Farmer {
		return nil, errs.NewValueIsInvalidError("user_type: only farmers can accept orders")
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	statusBefore := aggregate.Status()
	if err := aggregate.Accept(cmd.FarmerID(), cmd.FieldAddress(), cmd.FieldLocation()); err != nil {
		return nil, err
	}

	// A re-accept by the same farmer leaves the aggregate unchanged; skip the
	// write so retries do not bump the record's version.
	if aggregate.Status() == statusBefore {
		return aggregate, nil
	}

	if err := h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
