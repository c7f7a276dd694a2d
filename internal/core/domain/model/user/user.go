// Package user contains the User aggregate. A user participates in orders in
// exactly one role: customer (requests bales), farmer (accepts orders and
// supplies the field location) or baler (performs the baling work).
package user

import (
	"errors"
	"regexp"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9,10}$`)
)

// Role identifies which side of the marketplace a user is on.
type Role string

const (
	// Customer requests baled residue and receives the delivery.
	Customer Role = "customer"
	// Farmer accepts orders and supplies the field location.
	Farmer Role = "farmer"
	// Baler is assigned by the farmer to perform the baling operation.
	Baler Role = "baler"
)

// RoleFromString parses a role arriving from storage or the wire.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the three known roles.
func (r Role) Validate() error {
	switch r {
	case Customer, Farmer, Baler:
		return nil
	default:
		return errs.NewValueIsInvalidError("user_type: " + string(r))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is the aggregate root for a marketplace participant. Identity fields
// are immutable after creation; the rating aggregate fields are mutated only
// by the rating subsystem through UpdateRatingStats.
type User struct {
	id           kernel.ID
	role         Role
	name         string
	phone        string
	email        string
	passwordHash string
	address      string

	avgRating    float64
	totalRatings int

	active    bool
	createdAt time.Time

	isConstructed bool
}

// NewUser creates an active user with no ratings. The password must already
// be hashed by the caller; this aggregate never sees plaintext credentials.
func NewUser(id kernel.ID, role Role, name, phone, email, passwordHash, address string) (*User, error) {
	u := &User{
		address:       address,
		active:        true,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setRole(role),
		u.setName(name),
		u.setPhone(phone),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.ID,
	role Role,
	name, phone, email, passwordHash, address string,
	avgRating float64,
	totalRatings int,
	active bool,
	createdAt time.Time,
) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if totalRatings < 0 {
		return nil, errs.NewValueIsInvalidError("total_ratings")
	}

	return &User{
		id:            id,
		role:          role,
		name:          name,
		phone:         phone,
		email:         email,
		passwordHash:  passwordHash,
		address:       address,
		avgRating:     avgRating,
		totalRatings:  totalRatings,
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.ID { return u.id }

// Role returns the user's marketplace role.
func (u *User) Role() Role { return u.role }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Phone returns the user's contact phone number.
func (u *User) Phone() string { return u.phone }

// Email returns the user's login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Address returns the user's address, empty if not provided.
func (u *User) Address() string { return u.address }

// AvgRating returns the denormalized average satisfaction score.
func (u *User) AvgRating() float64 { return u.avgRating }

// TotalRatings returns the denormalized number of ratings received.
func (u *User) TotalRatings() int { return u.totalRatings }

// IsActive reports whether the account can log in and appear in listings.
func (u *User) IsActive() bool { return u.active }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdateRatingStats replaces the denormalized rating aggregate. Called by the
// rating subsystem after recomputing from the full rating scan, so upserted
// ratings never skew the average.
func (u *User) UpdateRatingStats(average float64, count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidError("total_ratings")
	}
	if count > 0 && (average < 1 || average > 5) {
		return errs.NewValueIsOutOfRangeError("avg_rating", average, 1, 5)
	}

	u.avgRating = average
	u.totalRatings = count
	return nil
}

// Deactivate hides the account from listings and blocks authentication.
func (u *User) Deactivate() {
	u.active = false
}

func (u *User) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("full_name")
	}
	u.name = name
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidError("phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash
	return nil
}
