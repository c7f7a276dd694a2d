package kernel

import (
	"fmt"

	"baleconnect/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an ID was not created through one of
// the constructor functions. It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object representing an opaque unique identifier for users,
// orders and ratings. It wraps a UUID and is immutable; the zero value is
// invalid and must be constructed via NewID or IDFromString.
//
// Example:
//
//	orderID := kernel.NewID()
//	fmt.Println(orderID.String()) // e.g. "550e8400-e29b-41d4-a716-446655440000"
type ID struct {
	id uuid.UUID
}

// NewID generates a new random identifier. This is the primary way to mint
// identifiers for newly created records.
func NewID() ID {
	return ID{id: uuid.New()}
}

// IDFromString parses an identifier from its string representation.
// It is used when reconstructing records from persistence or when parsing
// identifiers arriving over the wire.
func IDFromString(s string) (ID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("invalid ID format: %w", err)
	}
	newID := ID{id: id}
	if err = newID.Validate(); err != nil {
		return ID{}, err
	}
	return newID, nil
}

// String returns the canonical string representation of the identifier.
func (i ID) String() string {
	return i.id.String()
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.id == other.id
}

// Validate checks that the identifier was properly constructed.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.id == uuid.Nil {
		return ErrIDIsNotConstructed
	}
	return nil
}
