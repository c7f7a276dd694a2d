package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// AssignBalerCommandHandler moves an accepted order to baler_assigned.
// Only the farmer who accepted the order may choose its baler.
type AssignBalerCommandHandler struct {
	orderRepo ports.OrderRepository
	userRepo  ports.UserRepository
}

// NewAssignBalerCommandHandler creates a handler for baler assignment.
func NewAssignBalerCommandHandler(orderRepo ports.OrderRepository, userRepo ports.UserRepository) AssignBalerCommandHandler {
	return AssignBalerCommandHandler{orderRepo: orderRepo, userRepo: userRepo}
}

// Handle processes the assignment. The chosen user must hold the baler role,
// and the acting farmer must be the one who accepted the order.
func (h AssignBalerCommandHandler) Handle(ctx context.Context, cmd AssignBalerCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	baler, err := h.userRepo.Get(ctx, cmd.BalerID())
	if err != nil {
		return nil, err
	}
	if baler.Role() != user.Baler {
		return nil, errs.NewValueIsInvalidError("user_type: assigned user is not a baler")
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.FarmerID() == nil || !aggregate.FarmerID().IsEqual(cmd.FarmerID()) {
		return nil, errs.NewValueIsInvalidError("farmer_id: only the accepting farmer can assign a baler")
	}

	if err := aggregate.AssignBaler(cmd.BalerID()); err != nil {
		return nil, err
	}

	if err := h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
