package queries

import (
	"context"

	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"
)

// GetOrdersQueryHandler lists orders enriched with participant names and
// phone numbers, newest first.
type GetOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
	userRepo  ports.UserRepository
}

// NewGetOrdersQueryHandler creates a handler for enriched order listings.
func NewGetOrdersQueryHandler(orderRepo ports.OrderRepository, userRepo ports.UserRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orderRepo: orderRepo, userRepo: userRepo}
}

// Handle retrieves the filtered listing. Orders referencing missing or
// deactivated participants still appear, with placeholder participant
// fields.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.List(ctx, ports.OrderFilter{
		CustomerID: query.CustomerID(),
		FarmerID:   query.FarmerID(),
		BalerID:    query.BalerID(),
		Status:     query.Status(),
	})
	if err != nil {
		return nil, err
	}

	users, err := h.userRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	byID := indexUsers(users)

	views := make([]OrderView, 0, len(orders))
	for _, aggregate := range orders {
		views = append(views, newOrderView(aggregate, byID))
	}

	return views, nil
}

func indexUsers(users []*user.User) map[string]*user.User {
	byID := make(map[string]*user.User, len(users))
	for _, u := range users {
		byID[u.ID().String()] = u
	}
	return byID
}
