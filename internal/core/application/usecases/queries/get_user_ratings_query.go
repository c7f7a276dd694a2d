package queries

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrGetUserRatingsQueryIsNotConstructed is returned when a
// GetUserRatingsQuery was not created via its constructor.
var ErrGetUserRatingsQueryIsNotConstructed = errors.New(
	"GetUserRatingsQuery must be created via NewGetUserRatingsQuery constructor",
)

// GetUserRatingsQuery retrieves the ratings a user has received together
// with the aggregate recomputed from them.
type GetUserRatingsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetUserRatingsQuery creates a query for one user's received ratings.
func NewGetUserRatingsQuery(userID kernel.ID) (GetUserRatingsQuery, error) {
	q := GetUserRatingsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUserID(userID); err != nil {
		return GetUserRatingsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserRatingsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRatingsQueryIsNotConstructed)
}

// UserID returns the ratee whose ratings are requested.
func (q GetUserRatingsQuery) UserID() kernel.ID { return q.userID }

func (q *GetUserRatingsQuery) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	q.userID = userID
	return nil
}
