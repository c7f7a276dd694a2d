package commands

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrRegisterUserCommandIsNotConstructed is returned when a
// RegisterUserCommand was not created via its constructor.
var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// passwordMinLength matches the registration form's weakest accepted
// credential.
const passwordMinLength = 6

// RegisterUserCommand represents a new account signup. The command carries
// the plaintext password; the handler hashes it before it ever reaches an
// aggregate or the store.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.ID
	role     user.Role
	name     string
	phone    string
	email    string
	password string
	address  string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// The address is optional; everything else is required.
func NewRegisterUserCommand(userID kernel.ID, role user.Role, name, phone, email, password, address string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier minted for the new account.
func (c RegisterUserCommand) UserID() kernel.ID { return c.userID }

// Role returns the requested marketplace role.
func (c RegisterUserCommand) Role() user.Role { return c.role }

// Name returns the display name.
func (c RegisterUserCommand) Name() string { return c.name }

// Phone returns the contact phone number.
func (c RegisterUserCommand) Phone() string { return c.phone }

// Email returns the login email.
func (c RegisterUserCommand) Email() string { return c.email }

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterUserCommand) Password() string { return c.password }

// Address returns the optional address.
func (c RegisterUserCommand) Address() string { return c.address }

func (c *RegisterUserCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < passwordMinLength {
		return errs.NewValueIsInvalidError("password must be at least 6 characters")
	}
	c.password = password
	return nil
}
