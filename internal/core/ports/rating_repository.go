package ports

import (
	"context"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for ratings.
// A (order, rater) pair holds at most one rating: Upsert overwrites.
type RatingRepository interface {
	// Upsert stores the rating, replacing any previous rating for the same
	// (order, rater) pair.
	Upsert(ctx context.Context, aggregate *rating.Rating) error

	// GetByOrder retrieves all ratings submitted for an order.
	GetByOrder(ctx context.Context, orderID kernel.ID) ([]*rating.Rating, error)

	// GetByRatee retrieves all ratings received by a user.
	GetByRatee(ctx context.Context, rateeID kernel.ID) ([]*rating.Rating, error)
}
