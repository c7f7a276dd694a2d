package queries

import (
	"context"

	"baleconnect/internal/core/ports"
)

// GetUsersQueryHandler lists active users sorted by name.
type GetUsersQueryHandler struct {
	userRepo ports.UserRepository
}

// NewGetUsersQueryHandler creates a handler for user listings.
func NewGetUsersQueryHandler(userRepo ports.UserRepository) GetUsersQueryHandler {
	return GetUsersQueryHandler{userRepo: userRepo}
}

// Handle retrieves the listing as public projections.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := h.userRepo.List(ctx, query.Role())
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for _, aggregate := range users {
		views = append(views, newUserView(aggregate))
	}

	return views, nil
}
