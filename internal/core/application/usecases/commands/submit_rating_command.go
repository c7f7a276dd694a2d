package commands

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/rating"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrSubmitRatingCommandIsNotConstructed is returned when a
// SubmitRatingCommand was not created via its constructor.
var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents one order participant rating another after
// delivery. Submitting again for the same order overwrites the previous
// score.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID kernel.ID
	orderID  kernel.ID
	raterID  kernel.ID
	rateeID  kernel.ID
	score    int
	comment  string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a counterparty on a
// delivered order. The comment is optional.
func NewSubmitRatingCommand(ratingID, orderID, raterID, rateeID kernel.ID, score int, comment string) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRatingID(ratingID),
		cmd.setOrderID(orderID),
		cmd.setRaterID(raterID),
		cmd.setRateeID(rateeID),
		cmd.setScore(score),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// RatingID returns the identifier minted for the rating record.
func (c SubmitRatingCommand) RatingID() kernel.ID { return c.ratingID }

// OrderID returns the delivered order being rated.
func (c SubmitRatingCommand) OrderID() kernel.ID { return c.orderID }

// RaterID returns the participant submitting the score.
func (c SubmitRatingCommand) RaterID() kernel.ID { return c.raterID }

// RateeID returns the participant being scored.
func (c SubmitRatingCommand) RateeID() kernel.ID { return c.rateeID }

// Score returns the satisfaction score.
func (c SubmitRatingCommand) Score() int { return c.score }

// Comment returns the optional free-text comment.
func (c SubmitRatingCommand) Comment() string { return c.comment }

func (c *SubmitRatingCommand) setRatingID(ratingID kernel.ID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}
	c.ratingID = ratingID
	return nil
}

func (c *SubmitRatingCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitRatingCommand) setRaterID(raterID kernel.ID) error {
	if err := raterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("rater_id", err)
	}
	c.raterID = raterID
	return nil
}

func (c *SubmitRatingCommand) setRateeID(rateeID kernel.ID) error {
	if err := rateeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ratee_id", err)
	}
	c.rateeID = rateeID
	return nil
}

func (c *SubmitRatingCommand) setScore(score int) error {
	if score < rating.ScoreMin || score > rating.ScoreMax {
		return errs.NewValueIsOutOfRangeError("score", score, rating.ScoreMin, rating.ScoreMax)
	}
	c.score = score
	return nil
}
