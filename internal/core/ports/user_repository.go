package ports

import (
	"context"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	// Fails with errs.ErrObjectNotFound if absent.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	// Fails with errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetByEmail retrieves a user by login email.
	// Fails with errs.ErrObjectNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// List retrieves active users, optionally narrowed to one role,
	// sorted by name.
	List(ctx context.Context, role *user.Role) ([]*user.User, error)
}
