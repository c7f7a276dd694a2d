package queries

import (
	"context"

	"baleconnect/internal/core/ports"
)

// GetOrderQueryHandler retrieves one order with participant enrichment.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
	userRepo  ports.UserRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository, userRepo ports.UserRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo, userRepo: userRepo}
}

// Handle retrieves the order, failing with errs.ErrObjectNotFound if absent.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	users, err := h.userRepo.List(ctx, nil)
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(aggregate, indexUsers(users)), nil
}
