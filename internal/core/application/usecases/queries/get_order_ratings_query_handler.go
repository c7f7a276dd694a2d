package queries

import (
	"context"

	"baleconnect/internal/core/ports"
)

// GetOrderRatingsQueryHandler lists the ratings submitted for one order.
type GetOrderRatingsQueryHandler struct {
	ratingRepo ports.RatingRepository
	userRepo   ports.UserRepository
}

// NewGetOrderRatingsQueryHandler creates a handler for per-order rating
// listings.
func NewGetOrderRatingsQueryHandler(ratingRepo ports.RatingRepository, userRepo ports.UserRepository) GetOrderRatingsQueryHandler {
	return GetOrderRatingsQueryHandler{ratingRepo: ratingRepo, userRepo: userRepo}
}

// Handle retrieves the order's ratings. An unrated order yields an empty
// list, not an error.
func (h GetOrderRatingsQueryHandler) Handle(ctx context.Context, query GetOrderRatingsQuery) ([]RatingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ratings, err := h.ratingRepo.GetByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	users, err := h.userRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	byID := indexUsers(users)

	views := make([]RatingView, 0, len(ratings))
	for _, aggregate := range ratings {
		views = append(views, newRatingView(aggregate, byID))
	}

	return views, nil
}
