package commands

import (
	"context"

	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler creates new accounts. Passwords are stored as
// bcrypt hashes; the repository rejects duplicate emails.
type RegisterUserCommandHandler struct {
	userRepo ports.UserRepository
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(userRepo ports.UserRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{userRepo: userRepo}
}

// Handle processes the registration and returns the created user aggregate.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalError(err)
	}

	aggregate, err := user.NewUser(
		cmd.UserID(),
		cmd.Role(),
		cmd.Name(),
		cmd.Phone(),
		cmd.Email(),
		string(hash),
		cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	if err := h.userRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
