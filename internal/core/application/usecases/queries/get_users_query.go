package queries

import (
	"errors"

	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/pkg/guard"
)

// ErrGetUsersQueryIsNotConstructed is returned when a GetUsersQuery was not
// created via its constructor.
var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery lists active users, optionally narrowed to one role. Used by
// farmers to pick a baler and by operators to browse accounts.
type GetUsersQuery struct { //nolint:recvcheck //using for validation
	role *user.Role

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a user listing query. A nil role lists everyone.
func NewGetUsersQuery(role *user.Role) (GetUsersQuery, error) {
	q := GetUsersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setRole(role); err != nil {
		return GetUsersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Role returns the role filter, or nil.
func (q GetUsersQuery) Role() *user.Role { return q.role }

func (q *GetUsersQuery) setRole(role *user.Role) error {
	if role == nil {
		return nil
	}
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}
