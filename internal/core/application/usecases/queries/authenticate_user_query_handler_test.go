package queries_test

import (
	"context"
	"testing"

	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccount(t *testing.T, email, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewID(), user.Customer, "Somchai", "0812345678", email, string(hash), "")
	require.NoError(t, err)
	return u
}

func TestAuthenticateUserQueryHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	account := newAccount(t, "somchai@example.com", "secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "somchai@example.com").Return(account, nil).Once()

	q, err := queries.NewAuthenticateUserQuery("somchai@example.com", "secret123")
	require.NoError(t, err)

	h := queries.NewAuthenticateUserQueryHandler(userRepo)
	view, err := h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, account.ID().String(), view.UserID)
	assert.Equal(t, "customer", view.UserType)
	assert.Equal(t, "Somchai", view.FullName)
}

func TestAuthenticateUserQueryHandler_Handle_WrongPassword(t *testing.T) {
	ctx := context.Background()
	account := newAccount(t, "somchai@example.com", "secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "somchai@example.com").Return(account, nil).Once()

	q, err := queries.NewAuthenticateUserQuery("somchai@example.com", "wrong-password")
	require.NoError(t, err)

	h := queries.NewAuthenticateUserQueryHandler(userRepo)
	_, err = h.Handle(ctx, q)
	require.ErrorIs(t, err, queries.ErrInvalidCredentials)
}

func TestAuthenticateUserQueryHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "nobody@example.com").
		Return(nil, errs.NewObjectNotFoundError("user", "nobody@example.com")).Once()

	q, err := queries.NewAuthenticateUserQuery("nobody@example.com", "secret123")
	require.NoError(t, err)

	h := queries.NewAuthenticateUserQueryHandler(userRepo)
	_, err = h.Handle(ctx, q)
	require.ErrorIs(t, err, queries.ErrInvalidCredentials)
}

func TestAuthenticateUserQueryHandler_Handle_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	account := newAccount(t, "somchai@example.com", "secret123")
	account.Deactivate()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "somchai@example.com").Return(account, nil).Once()

	q, err := queries.NewAuthenticateUserQuery("somchai@example.com", "secret123")
	require.NoError(t, err)

	h := queries.NewAuthenticateUserQueryHandler(userRepo)
	_, err = h.Handle(ctx, q)
	require.ErrorIs(t, err, queries.ErrInvalidCredentials)
}

func TestNewAuthenticateUserQuery_RequiresCredentials(t *testing.T) {
	_, err := queries.NewAuthenticateUserQuery("", "secret123")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewAuthenticateUserQuery("somchai@example.com", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
