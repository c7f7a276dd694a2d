package commands_test

import (
	"context"
	"testing"

	"baleconnect/internal/core/application/usecases/commands"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewID(), user.Customer,
		"Somchai", "0812345678", "somchai@example.com", "secret123", "Chiang Mai")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()

	h := commands.NewRegisterUserCommandHandler(userRepo)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "Somchai", created.Name())
	assert.Equal(t, user.Customer, created.Role())
	assert.True(t, created.IsActive())
	assert.Zero(t, created.TotalRatings())

	// The stored credential is a bcrypt hash of the submitted password.
	assert.NotEqual(t, "secret123", created.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash()), []byte("secret123")))
	userRepo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewID(), user.Farmer,
		"Somsak", "0812345678", "dup@example.com", "secret123", "")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
		Return(errs.NewValueIsInvalidError("email already registered")).Once()

	h := commands.NewRegisterUserCommandHandler(userRepo)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRegisterUserCommand_Validation(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewID(), user.Customer,
			"Somchai", "0812345678", "somchai@example.com", "12345", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewID(), user.Customer,
			"Somchai", "0812345678", "somchai@example.com", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewID(), user.Role("admin"),
			"Somchai", "0812345678", "somchai@example.com", "secret123", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
