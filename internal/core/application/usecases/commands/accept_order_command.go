package commands

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrAcceptOrderCommandIsNotConstructed is returned when an AcceptOrderCommand
// was not created via its constructor.
var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a farmer taking a pending order, optionally
// recording where the residue field is located.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.ID
	farmerID      kernel.ID
	fieldAddress  string
	fieldLocation *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a farmer to accept an order.
// The field address and location are optional.
func NewAcceptOrderCommand(orderID, farmerID kernel.ID, fieldAddress string, fieldLocation *kernel.GeoPoint) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		fieldAddress:  fieldAddress,
		fieldLocation: fieldLocation,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFarmerID(farmerID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.ID { return c.orderID }

// FarmerID returns the accepting farmer.
func (c AcceptOrderCommand) FarmerID() kernel.ID { return c.farmerID }

// FieldAddress returns the optional field address supplied by the farmer.
func (c AcceptOrderCommand) FieldAddress() string { return c.fieldAddress }

// FieldLocation returns the optional field coordinates, or nil.
func (c AcceptOrderCommand) FieldLocation() *kernel.GeoPoint { return c.fieldLocation }

func (c *AcceptOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setFarmerID(farmerID kernel.ID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmer_id", err)
	}
	c.farmerID = farmerID
	return nil
}
