// Package rating contains the Rating entity: a satisfaction score one
// participant gives another for a delivered order. A (order, rater) pair
// holds at most one rating; re-submission overwrites.
package rating

import (
	"errors"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
)

const (
	// ScoreMin is the lowest allowed satisfaction score.
	ScoreMin = 1
	// ScoreMax is the highest allowed satisfaction score.
	ScoreMax = 5
)

// ErrRatingIsNotConstructed is returned when a Rating instance was not
// created through NewRating or RestoreRating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating")

// Rating records one participant's satisfaction score for another, tied to a
// delivered order.
type Rating struct {
	id      kernel.ID
	orderID kernel.ID
	raterID kernel.ID
	rateeID kernel.ID
	score   int
	comment string

	createdAt time.Time

	isConstructed bool
}

// NewRating creates a rating with a score in [ScoreMin, ScoreMax].
// The comment is optional.
func NewRating(id, orderID, raterID, rateeID kernel.ID, score int, comment string) (*Rating, error) {
	r := &Rating{
		comment:       comment,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setRaterID(raterID),
		r.setRateeID(rateeID),
		r.setScore(score),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRating reconstructs a Rating from persistence.
func RestoreRating(id, orderID, raterID, rateeID kernel.ID, score int, comment string, createdAt time.Time) (*Rating, error) {
	r := &Rating{
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setRaterID(raterID),
		r.setRateeID(rateeID),
		r.setScore(score),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Rating was created through a constructor.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.ID { return r.id }

// OrderID returns the delivered order this rating refers to.
func (r *Rating) OrderID() kernel.ID { return r.orderID }

// RaterID returns the user who submitted the rating.
func (r *Rating) RaterID() kernel.ID { return r.raterID }

// RateeID returns the user being rated.
func (r *Rating) RateeID() kernel.ID { return r.rateeID }

// Score returns the satisfaction score in [ScoreMin, ScoreMax].
func (r *Rating) Score() int { return r.score }

// Comment returns the optional free-text comment.
func (r *Rating) Comment() string { return r.comment }

// CreatedAt returns the submission timestamp.
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

func (r *Rating) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Rating) setRaterID(raterID kernel.ID) error {
	if err := raterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("rater_id", err)
	}
	r.raterID = raterID
	return nil
}

func (r *Rating) setRateeID(rateeID kernel.ID) error {
	if err := rateeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ratee_id", err)
	}
	r.rateeID = rateeID
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < ScoreMin || score > ScoreMax {
		return errs.NewValueIsOutOfRangeError("score", score, ScoreMin, ScoreMax)
	}
	r.score = score
	return nil
}
