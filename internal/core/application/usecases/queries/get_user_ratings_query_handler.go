package queries

import (
	"context"

	"baleconnect/internal/core/domain/model/rating"
	"baleconnect/internal/core/ports"
)

// GetUserRatingsQueryHandler lists the ratings a user has received. The
// average and count in the response are recomputed from the listed ratings,
// not read from the user record, so the response is consistent with itself
// even if the denormalized aggregate lags.
type GetUserRatingsQueryHandler struct {
	ratingRepo ports.RatingRepository
	userRepo   ports.UserRepository
}

// NewGetUserRatingsQueryHandler creates a handler for received-rating
// listings.
func NewGetUserRatingsQueryHandler(ratingRepo ports.RatingRepository, userRepo ports.UserRepository) GetUserRatingsQueryHandler {
	return GetUserRatingsQueryHandler{ratingRepo: ratingRepo, userRepo: userRepo}
}

// Handle retrieves the user's received ratings and their aggregate.
func (h GetUserRatingsQueryHandler) Handle(ctx context.Context, query GetUserRatingsQuery) (UserRatingsView, error) {
	if err := query.Validate(); err != nil {
		return UserRatingsView{}, err
	}

	received, err := h.ratingRepo.GetByRatee(ctx, query.UserID())
	if err != nil {
		return UserRatingsView{}, err
	}

	users, err := h.userRepo.List(ctx, nil)
	if err != nil {
		return UserRatingsView{}, err
	}
	byID := indexUsers(users)

	views := make([]RatingView, 0, len(received))
	for _, aggregate := range received {
		views = append(views, newRatingView(aggregate, byID))
	}

	average, count := rating.Aggregate(received)
	return UserRatingsView{
		Ratings:   views,
		AvgRating: average,
		Total:     count,
	}, nil
}
