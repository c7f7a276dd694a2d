package queries

import (
	"errors"

	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrAuthenticateUserQueryIsNotConstructed is returned when an
// AuthenticateUserQuery was not created via its constructor.
var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery checks login credentials and returns the account's
// public projection on success.
type AuthenticateUserQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credential check for the given login.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	q := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setEmail(email),
		q.setPassword(password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateUserQuery) Email() string { return q.email }

// Password returns the submitted plaintext password.
func (q AuthenticateUserQuery) Password() string { return q.password }

func (q *AuthenticateUserQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	q.email = email
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}
