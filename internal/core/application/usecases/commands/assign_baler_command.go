package commands

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrAssignBalerCommandIsNotConstructed is returned when an AssignBalerCommand
// was not created via its constructor.
var ErrAssignBalerCommandIsNotConstructed = errors.New(
	"AssignBalerCommand must be created via NewAssignBalerCommand constructor",
)

// AssignBalerCommand represents the accepting farmer choosing a baler to
// perform the baling work on an accepted order.
type AssignBalerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	farmerID kernel.ID
	balerID  kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignBalerCommand creates a command to assign a baler to an order.
func NewAssignBalerCommand(orderID, farmerID, balerID kernel.ID) (AssignBalerCommand, error) {
	cmd := AssignBalerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFarmerID(farmerID),
		cmd.setBalerID(balerID),
	); err != nil {
		return AssignBalerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignBalerCommand) Validate() error {
	return c.guard.Validate(ErrAssignBalerCommandIsNotConstructed)
}

// OrderID returns the order the baler is assigned to.
func (c AssignBalerCommand) OrderID() kernel.ID { return c.orderID }

// FarmerID returns the farmer performing the assignment.
func (c AssignBalerCommand) FarmerID() kernel.ID { return c.farmerID }

// BalerID returns the chosen baler.
func (c AssignBalerCommand) BalerID() kernel.ID { return c.balerID }

func (c *AssignBalerCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AssignBalerCommand) setFarmerID(farmerID kernel.ID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmer_id", err)
	}
	c.farmerID = farmerID
	return nil
}

func (c *AssignBalerCommand) setBalerID(balerID kernel.ID) error {
	if err := balerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("baler_id", err)
	}
	c.balerID = balerID
	return nil
}
