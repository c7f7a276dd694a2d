package queries_test

import (
	"context"
	"testing"

	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/rating"
	"baleconnect/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUserRatingsQueryHandler_Handle_RecomputesAggregate(t *testing.T) {
	ctx := context.Background()
	rater := newNamedUser(t, user.Customer, "Somchai")
	rateeID := kernel.NewID()

	first, err := rating.NewRating(kernel.NewID(), kernel.NewID(), rater.ID(), rateeID, 5, "great")
	require.NoError(t, err)
	second, err := rating.NewRating(kernel.NewID(), kernel.NewID(), kernel.NewID(), rateeID, 4, "")
	require.NoError(t, err)

	ratingRepo := new(MockRatingRepository)
	userRepo := new(MockUserRepository)
	mock.InOrder(
		ratingRepo.On("GetByRatee", ctx, rateeID).Return([]*rating.Rating{first, second}, nil).Once(),
		userRepo.On("List", ctx, (*user.Role)(nil)).Return([]*user.User{rater}, nil).Once(),
	)

	q, err := queries.NewGetUserRatingsQuery(rateeID)
	require.NoError(t, err)

	h := queries.NewGetUserRatingsQueryHandler(ratingRepo, userRepo)
	view, err := h.Handle(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, 4.5, view.AvgRating)
	assert.Equal(t, 2, view.Total)
	require.Len(t, view.Ratings, 2)
	assert.Equal(t, "Somchai", view.Ratings[0].RaterName)
	assert.Equal(t, "N/A", view.Ratings[1].RaterName)
}

func TestGetUserRatingsQueryHandler_Handle_NoRatings(t *testing.T) {
	ctx := context.Background()
	rateeID := kernel.NewID()

	ratingRepo := new(MockRatingRepository)
	userRepo := new(MockUserRepository)
	mock.InOrder(
		ratingRepo.On("GetByRatee", ctx, rateeID).Return([]*rating.Rating{}, nil).Once(),
		userRepo.On("List", ctx, (*user.Role)(nil)).Return([]*user.User{}, nil).Once(),
	)

	q, err := queries.NewGetUserRatingsQuery(rateeID)
	require.NoError(t, err)

	h := queries.NewGetUserRatingsQueryHandler(ratingRepo, userRepo)
	view, err := h.Handle(ctx, q)
	require.NoError(t, err)

	assert.Zero(t, view.AvgRating)
	assert.Zero(t, view.Total)
	assert.Empty(t, view.Ratings)
}
