package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/rating"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// SubmitRatingCommandHandler records a satisfaction score for a delivered
// order and refreshes the ratee's denormalized rating aggregate.
//
// The aggregate is always recomputed from the full set of the ratee's stored
// ratings, so an upsert that overwrites an earlier score never skews the
// average.
type SubmitRatingCommandHandler struct {
	orderRepo  ports.OrderRepository
	userRepo   ports.UserRepository
	ratingRepo ports.RatingRepository
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(
	orderRepo ports.OrderRepository,
	userRepo ports.UserRepository,
	ratingRepo ports.RatingRepository,
) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
	}
}

// Handle processes the rating. The order must be delivered, and both the
// rater and the ratee must be participants of it. Returns the stored rating.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) (*rating.Rating, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if aggregate.Status() != order.Delivered {
		return nil, errs.NewValueIsInvalidError("status: only delivered orders can be rated")
	}

	if cmd.RaterID().IsEqual(cmd.RateeID()) {
		return nil, errs.NewValueIsInvalidError("ratee_id: cannot rate yourself")
	}
	if !isParticipant(aggregate, cmd.RaterID()) {
		return nil, errs.NewValueIsInvalidError("rater_id: not a participant of this order")
	}
	if !isParticipant(aggregate, cmd.RateeID()) {
		return nil, errs.NewValueIsInvalidError("ratee_id: not a participant of this order")
	}

	ratee, err := h.userRepo.Get(ctx, cmd.RateeID())
	if err != nil {
		return nil, err
	}

	record, err := rating.NewRating(
		cmd.RatingID(),
		cmd.OrderID(),
		cmd.RaterID(),
		cmd.RateeID(),
		cmd.Score(),
		cmd.Comment(),
	)
	if err != nil {
		return nil, err
	}

	if err := h.ratingRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	received, err := h.ratingRepo.GetByRatee(ctx, cmd.RateeID())
	if err != nil {
		return nil, err
	}

	average, count := rating.Aggregate(received)
	if err := ratee.UpdateRatingStats(average, count); err != nil {
		return nil, err
	}
	if err := h.userRepo.Update(ctx, ratee); err != nil {
		return nil, err
	}

	return record, nil
}

func isParticipant(aggregate *order.Order, id kernel.ID) bool {
	if aggregate.CustomerID().IsEqual(id) {
		return true
	}
	if farmerID := aggregate.FarmerID(); farmerID != nil && farmerID.IsEqual(id) {
		return true
	}
	if balerID := aggregate.BalerID(); balerID != nil && balerID.IsEqual(id) {
		return true
	}
	return false
}
