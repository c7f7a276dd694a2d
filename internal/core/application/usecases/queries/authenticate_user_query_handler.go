package queries

import (
	"context"
	"errors"

	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login: unknown email,
// wrong password or a deactivated account. The three cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthenticateUserQueryHandler verifies credentials against the stored
// bcrypt hash.
type AuthenticateUserQueryHandler struct {
	userRepo ports.UserRepository
}

// NewAuthenticateUserQueryHandler creates a handler for credential checks.
func NewAuthenticateUserQueryHandler(userRepo ports.UserRepository) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{userRepo: userRepo}
}

// Handle verifies the login and returns the account's public projection.
func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	account, err := h.userRepo.GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return UserView{}, ErrInvalidCredentials
		}
		return UserView{}, err
	}

	if !account.IsActive() {
		return UserView{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(query.Password())); err != nil {
		return UserView{}, ErrInvalidCredentials
	}

	return newUserView(account), nil
}
